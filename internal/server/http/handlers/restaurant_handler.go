package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plateup/orderflow/internal/server/http/dto"
)

// RestaurantHandler manages restaurant registration endpoints.
type RestaurantHandler struct {
	facade RestaurantFacade
}

// NewRestaurantHandler constructs RestaurantHandler.
func NewRestaurantHandler(facade RestaurantFacade) *RestaurantHandler {
	return &RestaurantHandler{facade: facade}
}

// Create handles POST /api/restaurants.
func (h *RestaurantHandler) Create(c *gin.Context) {
	var req dto.RegisterRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	restaurant, err := h.facade.RegisterRestaurant(c.Request.Context(), CurrentActor(c), req.Name, req.Address)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewRestaurantResponse(restaurant))
}

// Mine handles GET /api/restaurants/mine.
func (h *RestaurantHandler) Mine(c *gin.Context) {
	restaurant, err := h.facade.MyRestaurant(c.Request.Context(), CurrentActor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRestaurantResponse(restaurant))
}
