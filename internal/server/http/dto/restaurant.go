package dto

import (
	"time"

	"github.com/plateup/orderflow/internal/domain/model"
)

// RegisterRestaurantRequest describes the restaurant registration payload.
type RegisterRestaurantRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// RestaurantResponse is the wire representation of a restaurant.
type RestaurantResponse struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRestaurantResponse converts a domain restaurant.
func NewRestaurantResponse(restaurant *model.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:        restaurant.ID,
		OwnerID:   restaurant.OwnerID,
		Name:      restaurant.Name,
		Address:   restaurant.Address,
		CreatedAt: restaurant.CreatedAt,
	}
}
