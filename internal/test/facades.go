package test

import (
	"context"

	domainErrors "github.com/plateup/orderflow/internal/domain/errors"
	"github.com/plateup/orderflow/internal/domain/model"
	"github.com/plateup/orderflow/internal/usecase"
)

// PlatformFacadeStub implements handlers.PlatformFacade. Every method
// delegates to its Fn field; unset methods fail with ErrNotFound so tests
// only wire what they exercise.
type PlatformFacadeStub struct {
	RegisterFn              func(ctx context.Context, login, password string, role model.Role, staffRole model.StaffRole, restaurantRef *int64) (string, error)
	AuthenticateFn          func(ctx context.Context, login, password string) (string, error)
	ParseTokenFn            func(token string) (int64, error)
	ActorFn                 func(ctx context.Context, id int64) (*model.Account, error)
	RegisterRestaurantFn    func(ctx context.Context, actor *model.Account, name, address string) (*model.Restaurant, error)
	MyRestaurantFn          func(ctx context.Context, actor *model.Account) (*model.Restaurant, error)
	PlaceOrderFn            func(ctx context.Context, actor *model.Account, restaurantID int64, items []model.OrderItem, address, paymentMethod string) (*model.Order, error)
	OrderFn                 func(ctx context.Context, actor *model.Account, orderID int64) (*model.Order, error)
	OrdersFn                func(ctx context.Context, actor *model.Account) ([]model.Order, error)
	UpdateOrderStatusFn     func(ctx context.Context, actor *model.Account, orderID int64, status string) (*usecase.TransitionResult, error)
	CancelOrderFn           func(ctx context.Context, actor *model.Account, orderID int64) (*model.Order, error)
	SubmitStatusRequestFn   func(ctx context.Context, actor *model.Account, orderID int64, status string) (*model.StatusChangeRequest, error)
	ApproveStatusRequestFn  func(ctx context.Context, actor *model.Account, requestID int64) (*model.Order, error)
	RejectStatusRequestFn   func(ctx context.Context, actor *model.Account, requestID int64) (*model.StatusChangeRequest, error)
	PendingStatusRequestsFn func(ctx context.Context, actor *model.Account) ([]model.StatusChangeRequest, error)
}

func (s *PlatformFacadeStub) Register(ctx context.Context, login, password string, role model.Role, staffRole model.StaffRole, restaurantRef *int64) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, login, password, role, staffRole, restaurantRef)
	}
	return "", domainErrors.ErrNotFound
}

func (s *PlatformFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "", domainErrors.ErrNotFound
}

func (s *PlatformFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return 0, domainErrors.ErrNotFound
}

func (s *PlatformFacadeStub) Actor(ctx context.Context, id int64) (*model.Account, error) {
	if s.ActorFn != nil {
		return s.ActorFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *PlatformFacadeStub) RegisterRestaurant(ctx context.Context, actor *model.Account, name, address string) (*model.Restaurant, error) {
	if s.RegisterRestaurantFn != nil {
		return s.RegisterRestaurantFn(ctx, actor, name, address)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *PlatformFacadeStub) MyRestaurant(ctx context.Context, actor *model.Account) (*model.Restaurant, error) {
	if s.MyRestaurantFn != nil {
		return s.MyRestaurantFn(ctx, actor)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *PlatformFacadeStub) PlaceOrder(ctx context.Context, actor *model.Account, restaurantID int64, items []model.OrderItem, address, paymentMethod string) (*model.Order, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, actor, restaurantID, items, address, paymentMethod)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *PlatformFacadeStub) Order(ctx context.Context, actor *model.Account, orderID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, actor, orderID)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *PlatformFacadeStub) Orders(ctx context.Context, actor *model.Account) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, actor)
	}
	return nil, nil
}

func (s *PlatformFacadeStub) UpdateOrderStatus(ctx context.Context, actor *model.Account, orderID int64, status string) (*usecase.TransitionResult, error) {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, actor, orderID, status)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *PlatformFacadeStub) CancelOrder(ctx context.Context, actor *model.Account, orderID int64) (*model.Order, error) {
	if s.CancelOrderFn != nil {
		return s.CancelOrderFn(ctx, actor, orderID)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *PlatformFacadeStub) SubmitStatusRequest(ctx context.Context, actor *model.Account, orderID int64, status string) (*model.StatusChangeRequest, error) {
	if s.SubmitStatusRequestFn != nil {
		return s.SubmitStatusRequestFn(ctx, actor, orderID, status)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *PlatformFacadeStub) ApproveStatusRequest(ctx context.Context, actor *model.Account, requestID int64) (*model.Order, error) {
	if s.ApproveStatusRequestFn != nil {
		return s.ApproveStatusRequestFn(ctx, actor, requestID)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *PlatformFacadeStub) RejectStatusRequest(ctx context.Context, actor *model.Account, requestID int64) (*model.StatusChangeRequest, error) {
	if s.RejectStatusRequestFn != nil {
		return s.RejectStatusRequestFn(ctx, actor, requestID)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *PlatformFacadeStub) PendingStatusRequests(ctx context.Context, actor *model.Account) ([]model.StatusChangeRequest, error) {
	if s.PendingStatusRequestsFn != nil {
		return s.PendingStatusRequestsFn(ctx, actor)
	}
	return nil, nil
}
