package handlers

import (
	"context"

	"github.com/plateup/orderflow/internal/domain/model"
	"github.com/plateup/orderflow/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string, role model.Role, staffRole model.StaffRole, restaurantRef *int64) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
	Actor(ctx context.Context, id int64) (*model.Account, error)
}

// RestaurantFacade covers restaurant registration for owners.
type RestaurantFacade interface {
	RegisterRestaurant(ctx context.Context, actor *model.Account, name, address string) (*model.Restaurant, error)
	MyRestaurant(ctx context.Context, actor *model.Account) (*model.Restaurant, error)
}

// OrderFacade encapsulates order placement and reads exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, actor *model.Account, restaurantID int64, items []model.OrderItem, address, paymentMethod string) (*model.Order, error)
	Order(ctx context.Context, actor *model.Account, orderID int64) (*model.Order, error)
	Orders(ctx context.Context, actor *model.Account) ([]model.Order, error)
}

// WorkflowFacade exposes the order lifecycle operations.
type WorkflowFacade interface {
	UpdateOrderStatus(ctx context.Context, actor *model.Account, orderID int64, status string) (*usecase.TransitionResult, error)
	CancelOrder(ctx context.Context, actor *model.Account, orderID int64) (*model.Order, error)
	SubmitStatusRequest(ctx context.Context, actor *model.Account, orderID int64, status string) (*model.StatusChangeRequest, error)
	ApproveStatusRequest(ctx context.Context, actor *model.Account, requestID int64) (*model.Order, error)
	RejectStatusRequest(ctx context.Context, actor *model.Account, requestID int64) (*model.StatusChangeRequest, error)
	PendingStatusRequests(ctx context.Context, actor *model.Account) ([]model.StatusChangeRequest, error)
}

// PlatformFacade aggregates the full set of operations used across handlers.
type PlatformFacade interface {
	AuthFacade
	RestaurantFacade
	OrderFacade
	WorkflowFacade
}
