package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized means the actor has no resolvable scope over the
	// target restaurant (or does not own the target order).
	ErrUnauthorized = errors.New("no authority over restaurant")
	// ErrForbidden means the actor is scoped but lacks direct authority for
	// the transition; the request-queue path is the way forward.
	ErrForbidden = errors.New("transition outside direct authority")
	// ErrInvalidState covers state-invariant violations: touching a
	// cancelled order, re-deciding a reviewed request, cancelling outside
	// the cancellable window, or requesting a no-op transition.
	ErrInvalidState  = errors.New("operation violates order state")
	ErrMissingStatus = errors.New("status is required")
	ErrUnknownStatus = errors.New("unknown order status")
	ErrInvalidOrder  = errors.New("invalid order payload")
)
