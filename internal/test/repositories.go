package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/plateup/orderflow/internal/domain/errors"
	"github.com/plateup/orderflow/internal/domain/model"
)

// AccountRepositoryStub stores accounts in-memory for tests.
type AccountRepositoryStub struct {
	ByLogin map[string]*model.Account
	ByID    map[int64]*model.Account
	Next    int64
	Err     error
}

// NewAccountRepositoryStub constructs stub repository with initialized maps.
func NewAccountRepositoryStub() *AccountRepositoryStub {
	return &AccountRepositoryStub{
		ByLogin: make(map[string]*model.Account),
		ByID:    make(map[int64]*model.Account),
		Next:    1,
	}
}

// Create registers account unless one with the same login exists.
func (s *AccountRepositoryStub) Create(ctx context.Context, account *model.Account) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByLogin[account.Login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	created := *account
	created.ID = s.Next
	s.Next++
	s.ByLogin[created.Login] = &created
	s.ByID[created.ID] = &created
	return &created, nil
}

func (s *AccountRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if account, ok := s.ByLogin[login]; ok {
		return account, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *AccountRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if account, ok := s.ByID[id]; ok {
		return account, nil
	}
	return nil, domainErrors.ErrNotFound
}

// RestaurantRepositoryStub stores restaurants in-memory for tests.
type RestaurantRepositoryStub struct {
	Restaurants []model.Restaurant
	Next        int64
	Err         error
}

// Create registers restaurant enforcing one restaurant per owner.
func (s *RestaurantRepositoryStub) Create(ctx context.Context, ownerID int64, name, address string) (*model.Restaurant, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Restaurants {
		if s.Restaurants[i].OwnerID == ownerID {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	if s.Next == 0 {
		s.Next = int64(len(s.Restaurants)) + 1
	}
	restaurant := model.Restaurant{ID: s.Next, OwnerID: ownerID, Name: name, Address: address}
	s.Next++
	s.Restaurants = append(s.Restaurants, restaurant)
	return &restaurant, nil
}

func (s *RestaurantRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Restaurant, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Restaurants {
		if s.Restaurants[i].ID == id {
			return &s.Restaurants[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *RestaurantRepositoryStub) GetByOwner(ctx context.Context, ownerID int64) (*model.Restaurant, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Restaurants {
		if s.Restaurants[i].OwnerID == ownerID {
			return &s.Restaurants[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// OrderUpdateCall stores information about a single UpdateStatus invocation.
type OrderUpdateCall struct {
	OrderID int64
	From    model.OrderStatus
	To      model.OrderStatus
}

// OrderRepositoryStub stores orders in-memory and mimics the conditional
// status write of the real store.
type OrderRepositoryStub struct {
	mu     sync.Mutex
	Orders map[int64]*model.Order
	Next   int64

	CreateFn       func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn      func(context.Context, int64) (*model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus, model.OrderStatus) error

	UpdateCalls []OrderUpdateCall
}

// NewOrderRepositoryStub constructs stub repository with initialized map.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[int64]*model.Order), Next: 1}
}

// Add seeds an order, assigning an identifier when missing.
func (s *OrderRepositoryStub) Add(order model.Order) *model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order.ID == 0 {
		order.ID = s.Next
		s.Next++
	}
	stored := order
	s.Orders[stored.ID] = &stored
	return &stored
}

func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	created := *order
	created.ID = s.Next
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.Next++
	s.Orders[created.ID] = &created
	return &created, nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if order, ok := s.Orders[id]; ok {
		copied := *order
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Order
	for _, order := range s.Orders {
		if order.CustomerID == customerID {
			result = append(result, *order)
		}
	}
	return result, nil
}

func (s *OrderRepositoryStub) ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Order
	for _, order := range s.Orders {
		if order.RestaurantID == restaurantID {
			result = append(result, *order)
		}
	}
	return result, nil
}

// UpdateStatus succeeds only when the stored status still matches from and is
// not terminal, like the conditional UPDATE in the real store.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, from, to)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.Orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if order.Status != from || order.Status == model.OrderStatusCancelled {
		return domainErrors.ErrInvalidState
	}
	order.Status = to
	s.UpdateCalls = append(s.UpdateCalls, OrderUpdateCall{OrderID: orderID, From: from, To: to})
	return nil
}

// RequestRepositoryStub stores status-change requests in-memory.
type RequestRepositoryStub struct {
	mu       sync.Mutex
	Requests map[int64]*model.StatusChangeRequest
	Next     int64

	CreateFn func(context.Context, *model.StatusChangeRequest) (*model.StatusChangeRequest, error)
	DecideFn func(context.Context, int64, model.RequestDecision, int64, time.Time) error
}

// NewRequestRepositoryStub constructs stub repository with initialized map.
func NewRequestRepositoryStub() *RequestRepositoryStub {
	return &RequestRepositoryStub{Requests: make(map[int64]*model.StatusChangeRequest), Next: 1}
}

// Add seeds a request, assigning an identifier when missing.
func (s *RequestRepositoryStub) Add(request model.StatusChangeRequest) *model.StatusChangeRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if request.ID == 0 {
		request.ID = s.Next
		s.Next++
	}
	stored := request
	s.Requests[stored.ID] = &stored
	return &stored
}

func (s *RequestRepositoryStub) Create(ctx context.Context, request *model.StatusChangeRequest) (*model.StatusChangeRequest, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, request)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	created := *request
	created.ID = s.Next
	created.CreatedAt = time.Now()
	s.Next++
	s.Requests[created.ID] = &created
	return &created, nil
}

func (s *RequestRepositoryStub) GetByID(ctx context.Context, id int64) (*model.StatusChangeRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if request, ok := s.Requests[id]; ok {
		copied := *request
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *RequestRepositoryStub) ListPendingByRestaurant(ctx context.Context, restaurantID int64) ([]model.StatusChangeRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.StatusChangeRequest
	for _, request := range s.Requests {
		if request.RestaurantID == restaurantID && request.Decision == model.DecisionPending {
			result = append(result, *request)
		}
	}
	return result, nil
}

// Decide applies a decision only while the stored request is still pending.
func (s *RequestRepositoryStub) Decide(ctx context.Context, requestID int64, decision model.RequestDecision, reviewerID int64, reviewedAt time.Time) error {
	if s.DecideFn != nil {
		return s.DecideFn(ctx, requestID, decision, reviewerID, reviewedAt)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	request, ok := s.Requests[requestID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if request.Decision != model.DecisionPending {
		return domainErrors.ErrInvalidState
	}
	request.Decision = decision
	request.ReviewedBy = &reviewerID
	request.ReviewedAt = &reviewedAt
	return nil
}
