package usecase

import (
	"context"
	"errors"
	"time"

	domainErrors "github.com/plateup/orderflow/internal/domain/errors"
	"github.com/plateup/orderflow/internal/domain/model"
	"github.com/plateup/orderflow/internal/domain/repository"
)

// Notifier receives order events after successful mutations. Implementations
// must not block; delivery failures stay on the notification side.
type Notifier interface {
	Notify(event model.OrderEvent)
}

// cancellableStatuses is the window in which a customer may still cancel.
// Once preparation has plausibly begun, cancellation is refused.
var cancellableStatuses = map[model.OrderStatus]struct{}{
	model.OrderStatusPlaced:    {},
	model.OrderStatusPending:   {},
	model.OrderStatusConfirmed: {},
}

// TransitionResult is the outcome of a status-change attempt: either the
// order moved (Order set), or the transition was queued for the owner's
// decision (Request set).
type TransitionResult struct {
	Order   *model.Order
	Request *model.StatusChangeRequest
}

// WorkflowUseCase owns the order lifecycle: direct transitions, customer
// cancellation, and the staff request/approval queue.
type WorkflowUseCase struct {
	orders   repository.OrderRepository
	requests repository.RequestRepository
	scope    *ScopeResolver
	notifier Notifier
	now      func() time.Time
}

// NewWorkflowUseCase constructs WorkflowUseCase.
func NewWorkflowUseCase(orders repository.OrderRepository, requests repository.RequestRepository, scope *ScopeResolver, notifier Notifier) *WorkflowUseCase {
	return &WorkflowUseCase{
		orders:   orders,
		requests: requests,
		scope:    scope,
		notifier: notifier,
		now:      time.Now,
	}
}

// UpdateStatus handles a status-change attempt by an owner or staff actor.
// Direct authority applies the transition immediately; staff outside their
// authority get a queued StatusChangeRequest instead, with the order left
// untouched.
func (u *WorkflowUseCase) UpdateStatus(ctx context.Context, actor *model.Account, orderID int64, rawStatus string) (*TransitionResult, error) {
	target, err := ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	scope, err := u.scope.ResolveRestaurantScope(ctx, actor)
	if err != nil {
		return nil, err
	}

	switch AuthorizeTransition(actor, scope, order, target) {
	case DecisionDirect:
		updated, err := u.applyTransition(ctx, order, target)
		if err != nil {
			return nil, err
		}
		return &TransitionResult{Order: updated}, nil

	case DecisionRequest:
		request, err := u.createRequest(ctx, actor, order, target)
		if err != nil {
			return nil, err
		}
		return &TransitionResult{Request: request}, nil

	default:
		if scope == 0 || scope != order.RestaurantID {
			return nil, domainErrors.ErrUnauthorized
		}
		// Scoped actor aiming at CANCELLED; that path belongs to the
		// customer's cancel operation.
		return nil, domainErrors.ErrForbidden
	}
}

// Cancel moves the order to CANCELLED on behalf of its own customer. Only
// permitted while the order sits in the cancellable window; repeated calls on
// a cancelled order keep failing with ErrInvalidState.
func (u *WorkflowUseCase) Cancel(ctx context.Context, actor *model.Account, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if actor.Role != model.RoleCustomer || actor.ID != order.CustomerID {
		return nil, domainErrors.ErrUnauthorized
	}
	if _, ok := cancellableStatuses[order.Status]; !ok {
		return nil, domainErrors.ErrInvalidState
	}

	return u.applyTransition(ctx, order, model.OrderStatusCancelled)
}

// SubmitRequest files a status-change request for a transition the staff
// actor may not apply directly.
func (u *WorkflowUseCase) SubmitRequest(ctx context.Context, actor *model.Account, orderID int64, rawStatus string) (*model.StatusChangeRequest, error) {
	target, err := ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	if actor.Role != model.RoleStaff {
		return nil, domainErrors.ErrUnauthorized
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	scope, err := u.scope.ResolveRestaurantScope(ctx, actor)
	if err != nil {
		return nil, err
	}

	switch AuthorizeTransition(actor, scope, order, target) {
	case DecisionRequest:
		return u.createRequest(ctx, actor, order, target)
	case DecisionDirect:
		// Direct authority makes the queue redundant for this target.
		return nil, domainErrors.ErrInvalidState
	default:
		if scope == 0 || scope != order.RestaurantID {
			return nil, domainErrors.ErrUnauthorized
		}
		return nil, domainErrors.ErrForbidden
	}
}

// ApproveRequest accepts a pending request: the referenced order is
// re-fetched and moved to the requested status, then the request is marked
// APPROVED with reviewer and timestamp. A vanished order fails the call
// without mutating the request.
func (u *WorkflowUseCase) ApproveRequest(ctx context.Context, actor *model.Account, requestID int64) (*model.Order, error) {
	request, err := u.ownedPendingRequest(ctx, actor, requestID)
	if err != nil {
		return nil, err
	}

	order, err := u.orders.GetByID(ctx, request.OrderID)
	if err != nil {
		return nil, err
	}

	order, err = u.applyTransition(ctx, order, request.ToStatus)
	if err != nil {
		return nil, err
	}

	if err := u.requests.Decide(ctx, request.ID, model.DecisionApproved, actor.ID, u.now()); err != nil {
		return nil, err
	}
	return order, nil
}

// RejectRequest declines a pending request without touching the order.
func (u *WorkflowUseCase) RejectRequest(ctx context.Context, actor *model.Account, requestID int64) (*model.StatusChangeRequest, error) {
	request, err := u.ownedPendingRequest(ctx, actor, requestID)
	if err != nil {
		return nil, err
	}

	reviewedAt := u.now()
	if err := u.requests.Decide(ctx, request.ID, model.DecisionRejected, actor.ID, reviewedAt); err != nil {
		return nil, err
	}

	request.Decision = model.DecisionRejected
	request.ReviewedBy = &actor.ID
	request.ReviewedAt = &reviewedAt
	return request, nil
}

// PendingRequests lists undecided requests for the owner's restaurant.
func (u *WorkflowUseCase) PendingRequests(ctx context.Context, actor *model.Account) ([]model.StatusChangeRequest, error) {
	if actor.Role != model.RoleRestaurantOwner {
		return nil, domainErrors.ErrUnauthorized
	}
	scope, err := u.scope.ResolveRestaurantScope(ctx, actor)
	if err != nil {
		return nil, err
	}
	if scope == 0 {
		return nil, domainErrors.ErrUnauthorized
	}
	return u.requests.ListPendingByRestaurant(ctx, scope)
}

func (u *WorkflowUseCase) createRequest(ctx context.Context, actor *model.Account, order *model.Order, target model.OrderStatus) (*model.StatusChangeRequest, error) {
	if order.Status.Terminal() {
		return nil, domainErrors.ErrInvalidState
	}
	if target == order.Status {
		return nil, domainErrors.ErrInvalidState
	}

	request := &model.StatusChangeRequest{
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		RequestedBy:  actor.ID,
		FromStatus:   order.Status,
		ToStatus:     target,
		Decision:     model.DecisionPending,
	}
	return u.requests.Create(ctx, request)
}

func (u *WorkflowUseCase) ownedPendingRequest(ctx context.Context, actor *model.Account, requestID int64) (*model.StatusChangeRequest, error) {
	request, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if actor.Role != model.RoleRestaurantOwner {
		return nil, domainErrors.ErrUnauthorized
	}
	scope, err := u.scope.ResolveRestaurantScope(ctx, actor)
	if err != nil {
		return nil, err
	}
	if scope == 0 || scope != request.RestaurantID {
		return nil, domainErrors.ErrUnauthorized
	}

	if request.Decision != model.DecisionPending {
		return nil, domainErrors.ErrInvalidState
	}
	return request, nil
}

// applyTransition is the single write path for order status. The store-level
// update re-checks the observed status and the terminal invariant, so two
// concurrent attempts cannot both succeed.
func (u *WorkflowUseCase) applyTransition(ctx context.Context, order *model.Order, target model.OrderStatus) (*model.Order, error) {
	if order.Status.Terminal() {
		return nil, domainErrors.ErrInvalidState
	}

	if err := u.orders.UpdateStatus(ctx, order.ID, order.Status, target); err != nil {
		if errors.Is(err, domainErrors.ErrInvalidState) {
			return nil, domainErrors.ErrInvalidState
		}
		return nil, err
	}

	order.Status = target
	order.UpdatedAt = u.now()

	if u.notifier != nil {
		u.notifier.Notify(model.OrderEvent{
			Kind:         model.OrderEventStatusChanged,
			OrderID:      order.ID,
			CustomerID:   order.CustomerID,
			RestaurantID: order.RestaurantID,
			Status:       order.Status,
			TotalAmount:  order.TotalAmount,
			OccurredAt:   u.now(),
		})
	}
	return order, nil
}
