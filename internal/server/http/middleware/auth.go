package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/plateup/orderflow/internal/domain/errors"
	"github.com/plateup/orderflow/internal/domain/model"
	pkgAuth "github.com/plateup/orderflow/internal/pkg/auth"
)

const (
	// ActorContextKey is a gin context key for the authenticated account.
	ActorContextKey = "actor"
	authCookieName  = "orderflow_token"
)

// ActorResolver turns a session token into a full account record. Handlers
// need the role and scoping reference, not just the id.
type ActorResolver interface {
	ParseToken(token string) (int64, error)
	Actor(ctx context.Context, id int64) (*model.Account, error)
}

// AuthRequired ensures the caller is authenticated and loads their account
// into the request context.
func AuthRequired(resolver ActorResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		accountID, err := resolver.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		actor, err := resolver.Actor(c.Request.Context(), accountID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(ActorContextKey, actor)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
