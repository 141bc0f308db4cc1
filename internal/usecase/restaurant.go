package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/plateup/orderflow/internal/domain/errors"
	"github.com/plateup/orderflow/internal/domain/model"
	"github.com/plateup/orderflow/internal/domain/repository"
)

// RestaurantUseCase manages restaurant registration for owner accounts.
type RestaurantUseCase struct {
	restaurants repository.RestaurantRepository
}

// NewRestaurantUseCase constructs RestaurantUseCase.
func NewRestaurantUseCase(restaurants repository.RestaurantRepository) *RestaurantUseCase {
	return &RestaurantUseCase{restaurants: restaurants}
}

// Register creates the restaurant owned by the actor. An owner holds at most
// one restaurant; the unique owner constraint in storage backs this up.
func (u *RestaurantUseCase) Register(ctx context.Context, actor *model.Account, name, address string) (*model.Restaurant, error) {
	if actor.Role != model.RoleRestaurantOwner {
		return nil, domainErrors.ErrUnauthorized
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrInvalidOrder
	}
	return u.restaurants.Create(ctx, actor.ID, name, strings.TrimSpace(address))
}

// Mine returns the actor's restaurant.
func (u *RestaurantUseCase) Mine(ctx context.Context, actor *model.Account) (*model.Restaurant, error) {
	if actor.Role != model.RoleRestaurantOwner {
		return nil, domainErrors.ErrUnauthorized
	}
	return u.restaurants.GetByOwner(ctx, actor.ID)
}
