package repository

import (
	"context"

	"github.com/plateup/orderflow/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
//
// UpdateStatus is a conditional write: it succeeds only while the stored
// status still equals from and is not CANCELLED at write time. A missed
// condition surfaces as ErrInvalidState so a concurrent transition can never
// slip past the terminal check.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus) error
}
