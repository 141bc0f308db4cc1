package app

import (
	"context"
	"testing"

	domainErrors "github.com/plateup/orderflow/internal/domain/errors"
	"github.com/plateup/orderflow/internal/domain/model"
	testhelpers "github.com/plateup/orderflow/internal/test"
	"github.com/plateup/orderflow/internal/usecase"
)

type facadeFixture struct {
	facade      *PlatformFacade
	accounts    *testhelpers.AccountRepositoryStub
	restaurants *testhelpers.RestaurantRepositoryStub
	orders      *testhelpers.OrderRepositoryStub
	requests    *testhelpers.RequestRepositoryStub
	notifier    *testhelpers.NotifierStub
}

func newFacadeFixture() *facadeFixture {
	accounts := testhelpers.NewAccountRepositoryStub()
	restaurants := &testhelpers.RestaurantRepositoryStub{}
	orders := testhelpers.NewOrderRepositoryStub()
	requests := testhelpers.NewRequestRepositoryStub()
	notifier := &testhelpers.NotifierStub{}

	authUC := usecase.NewAuthUseCase(accounts, &testhelpers.HasherStub{}, &testhelpers.StrategyStub{})
	scope := usecase.NewScopeResolver(restaurants)
	restaurantUC := usecase.NewRestaurantUseCase(restaurants)
	orderUC := usecase.NewOrderUseCase(orders, restaurants, scope, notifier)
	workflowUC := usecase.NewWorkflowUseCase(orders, requests, scope, notifier)

	return &facadeFixture{
		facade:      NewPlatformFacade(authUC, restaurantUC, orderUC, workflowUC),
		accounts:    accounts,
		restaurants: restaurants,
		orders:      orders,
		requests:    requests,
		notifier:    notifier,
	}
}

func TestPlatformFacadeAuth(t *testing.T) {
	f := newFacadeFixture()

	token, err := f.facade.Register(context.Background(), "owner", "pass", model.RoleRestaurantOwner, "", nil)
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}

	stored, err := f.accounts.GetByLogin(context.Background(), "owner")
	if err != nil {
		t.Fatalf("account not stored: %v", err)
	}
	if stored.Role != model.RoleRestaurantOwner {
		t.Fatalf("unexpected stored role %q", stored.Role)
	}

	if _, err := f.facade.Authenticate(context.Background(), "owner", "pass"); err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}

	id, err := f.facade.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	actor, err := f.facade.Actor(context.Background(), id)
	if err != nil {
		t.Fatalf("actor lookup failed: %v", err)
	}
	if actor.Login != "owner" {
		t.Fatalf("unexpected actor: %+v", actor)
	}
}

// TestPlatformFacadeOrderLifecycle drives the whole flow through the facade:
// registration, restaurant setup, placement, a queued staff request, and the
// owner's approval.
func TestPlatformFacadeOrderLifecycle(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	ownerToken, err := f.facade.Register(ctx, "owner", "pass", model.RoleRestaurantOwner, "", nil)
	if err != nil {
		t.Fatalf("register owner: %v", err)
	}
	ownerID, _ := f.facade.ParseToken(ownerToken)
	owner, _ := f.facade.Actor(ctx, ownerID)

	restaurant, err := f.facade.RegisterRestaurant(ctx, owner, "Trattoria", "1 Side St")
	if err != nil {
		t.Fatalf("register restaurant: %v", err)
	}
	if mine, err := f.facade.MyRestaurant(ctx, owner); err != nil || mine.ID != restaurant.ID {
		t.Fatalf("unexpected restaurant lookup: %+v %v", mine, err)
	}

	customerToken, err := f.facade.Register(ctx, "customer", "pass", model.RoleCustomer, "", nil)
	if err != nil {
		t.Fatalf("register customer: %v", err)
	}
	customerID, _ := f.facade.ParseToken(customerToken)
	customer, _ := f.facade.Actor(ctx, customerID)

	chefToken, err := f.facade.Register(ctx, "chef", "pass", model.RoleStaff, model.StaffRoleChef, &restaurant.ID)
	if err != nil {
		t.Fatalf("register chef: %v", err)
	}
	chefID, _ := f.facade.ParseToken(chefToken)
	chef, _ := f.facade.Actor(ctx, chefID)

	order, err := f.facade.PlaceOrder(ctx, customer, restaurant.ID,
		[]model.OrderItem{{Name: "margherita", Quantity: 1, Price: 9.5}}, "12 Main St", "card")
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	// Chef moves the order through their own authority.
	result, err := f.facade.UpdateOrderStatus(ctx, chef, order.ID, "PREPARING")
	if err != nil {
		t.Fatalf("chef transition: %v", err)
	}
	if result.Order == nil || result.Order.Status != model.OrderStatusPreparing {
		t.Fatalf("unexpected transition result: %+v", result)
	}

	// Outside their authority the attempt queues a request instead.
	result, err = f.facade.UpdateOrderStatus(ctx, chef, order.ID, "DELIVERED")
	if err != nil {
		t.Fatalf("chef request: %v", err)
	}
	if result.Request == nil {
		t.Fatal("expected a queued request")
	}

	pending, err := f.facade.PendingStatusRequests(ctx, owner)
	if err != nil {
		t.Fatalf("pending requests: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != result.Request.ID {
		t.Fatalf("unexpected pending set: %+v", pending)
	}

	updated, err := f.facade.ApproveStatusRequest(ctx, owner, result.Request.ID)
	if err != nil {
		t.Fatalf("approve request: %v", err)
	}
	if updated.Status != model.OrderStatusDelivered {
		t.Fatalf("expected DELIVERED, got %s", updated.Status)
	}

	events := f.notifier.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 events (placed + 2 transitions), got %d", len(events))
	}
}

func TestPlatformFacadeCancel(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	f.restaurants.Restaurants = []model.Restaurant{{ID: 7, OwnerID: 3}}
	customer := &model.Account{ID: 5, Role: model.RoleCustomer}
	order := f.orders.Add(model.Order{CustomerID: 5, RestaurantID: 7, Status: model.OrderStatusPlaced})

	cancelled, err := f.facade.CancelOrder(ctx, customer, order.ID)
	if err != nil {
		t.Fatalf("cancel order: %v", err)
	}
	if cancelled.Status != model.OrderStatusCancelled {
		t.Fatalf("expected CANCELLED, got %s", cancelled.Status)
	}

	if _, err := f.facade.CancelOrder(ctx, customer, order.ID); err != domainErrors.ErrInvalidState {
		t.Fatalf("expected invalid state error, got %v", err)
	}
}

func TestPlatformFacadeSubmitAndReject(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	f.restaurants.Restaurants = []model.Restaurant{{ID: 7, OwnerID: 3}}
	owner := &model.Account{ID: 3, Role: model.RoleRestaurantOwner}
	ref := int64(7)
	delivery := &model.Account{ID: 10, Role: model.RoleStaff, StaffRole: model.StaffRoleDelivery, RestaurantRef: &ref}
	order := f.orders.Add(model.Order{CustomerID: 5, RestaurantID: 7, Status: model.OrderStatusPlaced})

	request, err := f.facade.SubmitStatusRequest(ctx, delivery, order.ID, "CONFIRMED")
	if err != nil {
		t.Fatalf("submit request: %v", err)
	}

	rejected, err := f.facade.RejectStatusRequest(ctx, owner, request.ID)
	if err != nil {
		t.Fatalf("reject request: %v", err)
	}
	if rejected.Decision != model.DecisionRejected {
		t.Fatalf("expected REJECTED, got %s", rejected.Decision)
	}

	got, err := f.facade.Order(ctx, owner, order.ID)
	if err != nil {
		t.Fatalf("order lookup: %v", err)
	}
	if got.Status != model.OrderStatusPlaced {
		t.Fatal("rejected request must not move the order")
	}

	orders, err := f.facade.Orders(ctx, owner)
	if err != nil {
		t.Fatalf("orders lookup: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
}
