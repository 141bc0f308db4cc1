package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/plateup/orderflow/internal/domain/errors"
	"github.com/plateup/orderflow/internal/domain/model"
	"github.com/plateup/orderflow/internal/server/http/middleware"
)

// CurrentActor extracts the authenticated account from context.
func CurrentActor(c *gin.Context) *model.Account {
	val, ok := c.Get(middleware.ActorContextKey)
	if !ok {
		return nil
	}
	actor, _ := val.(*model.Account)
	return actor
}

// pathID parses a numeric path parameter; 0 means malformed.
func pathID(c *gin.Context, name string) int64 {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// respondError maps the domain error taxonomy onto stable HTTP statuses so a
// client can tell "file a request instead" (422) from "order cannot be
// touched" (409) from "not your restaurant" (403).
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrMissingStatus),
		errors.Is(err, domainErrors.ErrUnknownStatus),
		errors.Is(err, domainErrors.ErrInvalidOrder),
		errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrAlreadyExists),
		errors.Is(err, domainErrors.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrForbidden):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.Status(http.StatusInternalServerError)
	}
}
