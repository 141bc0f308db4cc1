package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/plateup/orderflow/internal/domain/errors"
	"github.com/plateup/orderflow/internal/domain/model"
	"github.com/plateup/orderflow/internal/domain/repository"
)

// OrderUseCase covers order placement and reads. Status mutation lives in
// WorkflowUseCase.
type OrderUseCase struct {
	orders      repository.OrderRepository
	restaurants repository.RestaurantRepository
	scope       *ScopeResolver
	notifier    Notifier
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, restaurants repository.RestaurantRepository, scope *ScopeResolver, notifier Notifier) *OrderUseCase {
	return &OrderUseCase{orders: orders, restaurants: restaurants, scope: scope, notifier: notifier}
}

// Place registers a new order for the customer. Orders always start in
// PLACED; every later move goes through the workflow.
func (u *OrderUseCase) Place(ctx context.Context, actor *model.Account, restaurantID int64, items []model.OrderItem, address, paymentMethod string) (*model.Order, error) {
	if actor.Role != model.RoleCustomer {
		return nil, domainErrors.ErrUnauthorized
	}
	if len(items) == 0 || strings.TrimSpace(address) == "" {
		return nil, domainErrors.ErrInvalidOrder
	}

	if _, err := u.restaurants.GetByID(ctx, restaurantID); err != nil {
		return nil, err
	}

	order := &model.Order{
		CustomerID:    actor.ID,
		RestaurantID:  restaurantID,
		Status:        model.OrderStatusPlaced,
		Items:         items,
		TotalAmount:   model.Total(items),
		Address:       strings.TrimSpace(address),
		PaymentMethod: paymentMethod,
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	if u.notifier != nil {
		u.notifier.Notify(model.OrderEvent{
			Kind:         model.OrderEventPlaced,
			OrderID:      created.ID,
			CustomerID:   created.CustomerID,
			RestaurantID: created.RestaurantID,
			Status:       created.Status,
			TotalAmount:  created.TotalAmount,
			OccurredAt:   created.CreatedAt,
		})
	}
	return created, nil
}

// Get returns the order when the actor may see it: the owning customer, or
// an owner/staff actor scoped to the order's restaurant.
func (u *OrderUseCase) Get(ctx context.Context, actor *model.Account, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if actor.Role == model.RoleCustomer {
		if actor.ID != order.CustomerID {
			return nil, domainErrors.ErrUnauthorized
		}
		return order, nil
	}

	scope, err := u.scope.ResolveRestaurantScope(ctx, actor)
	if err != nil {
		return nil, err
	}
	if scope == 0 || scope != order.RestaurantID {
		return nil, domainErrors.ErrUnauthorized
	}
	return order, nil
}

// List returns the caller-visible orders: a customer's own orders, or all
// orders of the restaurant the actor is scoped to.
func (u *OrderUseCase) List(ctx context.Context, actor *model.Account) ([]model.Order, error) {
	if actor.Role == model.RoleCustomer {
		return u.orders.ListByCustomer(ctx, actor.ID)
	}

	scope, err := u.scope.ResolveRestaurantScope(ctx, actor)
	if err != nil {
		return nil, err
	}
	if scope == 0 {
		return nil, domainErrors.ErrUnauthorized
	}
	return u.orders.ListByRestaurant(ctx, scope)
}
