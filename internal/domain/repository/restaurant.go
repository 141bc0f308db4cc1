package repository

import (
	"context"

	"github.com/plateup/orderflow/internal/domain/model"
)

// RestaurantRepository describes persistence operations for restaurants.
type RestaurantRepository interface {
	Create(ctx context.Context, ownerID int64, name, address string) (*model.Restaurant, error)
	GetByID(ctx context.Context, id int64) (*model.Restaurant, error)
	GetByOwner(ctx context.Context, ownerID int64) (*model.Restaurant, error)
}
