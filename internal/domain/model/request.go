package model

import "time"

// RequestDecision describes the review outcome of a status-change request.
type RequestDecision string

const (
	DecisionPending  RequestDecision = "PENDING"
	DecisionApproved RequestDecision = "APPROVED"
	DecisionRejected RequestDecision = "REJECTED"
)

// StatusChangeRequest is a staff-proposed order transition awaiting the
// restaurant owner's decision. A decision, once made, is immutable.
type StatusChangeRequest struct {
	ID           int64
	OrderID      int64
	RestaurantID int64
	RequestedBy  int64
	FromStatus   OrderStatus
	ToStatus     OrderStatus
	Decision     RequestDecision
	ReviewedBy   *int64
	ReviewedAt   *time.Time
	CreatedAt    time.Time
}
