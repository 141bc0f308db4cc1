package app

import (
	"context"

	"github.com/plateup/orderflow/internal/domain/model"
	"github.com/plateup/orderflow/internal/usecase"
)

// PlatformFacade aggregates use cases behind the single surface consumed by
// HTTP handlers and middleware.
type PlatformFacade struct {
	auth        *usecase.AuthUseCase
	restaurants *usecase.RestaurantUseCase
	orders      *usecase.OrderUseCase
	workflow    *usecase.WorkflowUseCase
}

// NewPlatformFacade constructs PlatformFacade.
func NewPlatformFacade(auth *usecase.AuthUseCase, restaurants *usecase.RestaurantUseCase, orders *usecase.OrderUseCase, workflow *usecase.WorkflowUseCase) *PlatformFacade {
	return &PlatformFacade{auth: auth, restaurants: restaurants, orders: orders, workflow: workflow}
}

func (f *PlatformFacade) Register(ctx context.Context, login, password string, role model.Role, staffRole model.StaffRole, restaurantRef *int64) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password, role, staffRole, restaurantRef)
	return token, err
}

func (f *PlatformFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *PlatformFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *PlatformFacade) Actor(ctx context.Context, id int64) (*model.Account, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *PlatformFacade) RegisterRestaurant(ctx context.Context, actor *model.Account, name, address string) (*model.Restaurant, error) {
	return f.restaurants.Register(ctx, actor, name, address)
}

func (f *PlatformFacade) MyRestaurant(ctx context.Context, actor *model.Account) (*model.Restaurant, error) {
	return f.restaurants.Mine(ctx, actor)
}

func (f *PlatformFacade) PlaceOrder(ctx context.Context, actor *model.Account, restaurantID int64, items []model.OrderItem, address, paymentMethod string) (*model.Order, error) {
	return f.orders.Place(ctx, actor, restaurantID, items, address, paymentMethod)
}

func (f *PlatformFacade) Order(ctx context.Context, actor *model.Account, orderID int64) (*model.Order, error) {
	return f.orders.Get(ctx, actor, orderID)
}

func (f *PlatformFacade) Orders(ctx context.Context, actor *model.Account) ([]model.Order, error) {
	return f.orders.List(ctx, actor)
}

func (f *PlatformFacade) UpdateOrderStatus(ctx context.Context, actor *model.Account, orderID int64, status string) (*usecase.TransitionResult, error) {
	return f.workflow.UpdateStatus(ctx, actor, orderID, status)
}

func (f *PlatformFacade) CancelOrder(ctx context.Context, actor *model.Account, orderID int64) (*model.Order, error) {
	return f.workflow.Cancel(ctx, actor, orderID)
}

func (f *PlatformFacade) SubmitStatusRequest(ctx context.Context, actor *model.Account, orderID int64, status string) (*model.StatusChangeRequest, error) {
	return f.workflow.SubmitRequest(ctx, actor, orderID, status)
}

func (f *PlatformFacade) ApproveStatusRequest(ctx context.Context, actor *model.Account, requestID int64) (*model.Order, error) {
	return f.workflow.ApproveRequest(ctx, actor, requestID)
}

func (f *PlatformFacade) RejectStatusRequest(ctx context.Context, actor *model.Account, requestID int64) (*model.StatusChangeRequest, error) {
	return f.workflow.RejectRequest(ctx, actor, requestID)
}

func (f *PlatformFacade) PendingStatusRequests(ctx context.Context, actor *model.Account) ([]model.StatusChangeRequest, error) {
	return f.workflow.PendingRequests(ctx, actor)
}
