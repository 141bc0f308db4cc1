package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/plateup/orderflow/internal/domain/errors"
	"github.com/plateup/orderflow/internal/domain/model"
	"github.com/plateup/orderflow/internal/domain/repository"
)

// ScopeResolver determines which restaurant an actor is authorized to act on
// behalf of.
type ScopeResolver struct {
	restaurants repository.RestaurantRepository
}

// NewScopeResolver constructs ScopeResolver.
func NewScopeResolver(restaurants repository.RestaurantRepository) *ScopeResolver {
	return &ScopeResolver{restaurants: restaurants}
}

// ResolveRestaurantScope returns the id of the restaurant the actor is scoped
// to, or 0 when no scope can be resolved. Customers are never
// restaurant-scoped. The zero result is not an error; callers reject the
// calling operation as unauthorized.
//
// For staff the stored RestaurantRef is a known historical inconsistency: it
// may hold a restaurant id or the owning account's id. Both interpretations
// are tried, restaurant-by-id first.
func (r *ScopeResolver) ResolveRestaurantScope(ctx context.Context, actor *model.Account) (int64, error) {
	switch actor.Role {
	case model.RoleRestaurantOwner:
		restaurant, err := r.restaurants.GetByOwner(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return 0, nil
			}
			return 0, err
		}
		return restaurant.ID, nil

	case model.RoleStaff:
		if actor.RestaurantRef == nil {
			return 0, nil
		}
		ref := *actor.RestaurantRef

		restaurant, err := r.restaurants.GetByID(ctx, ref)
		if err == nil {
			return restaurant.ID, nil
		}
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return 0, err
		}

		// The reference is not a restaurant id; try it as an owner id.
		restaurant, err = r.restaurants.GetByOwner(ctx, ref)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return 0, nil
			}
			return 0, err
		}
		return restaurant.ID, nil
	}

	return 0, nil
}
