package repository

import (
	"context"
	"time"

	"github.com/plateup/orderflow/internal/domain/model"
)

// RequestRepository describes persistence operations with status-change
// requests.
//
// Decide is a one-shot conditional write: it succeeds only while the stored
// decision is still PENDING, so a reviewed request can never be re-decided.
type RequestRepository interface {
	Create(ctx context.Context, request *model.StatusChangeRequest) (*model.StatusChangeRequest, error)
	GetByID(ctx context.Context, id int64) (*model.StatusChangeRequest, error)
	ListPendingByRestaurant(ctx context.Context, restaurantID int64) ([]model.StatusChangeRequest, error)
	Decide(ctx context.Context, requestID int64, decision model.RequestDecision, reviewerID int64, reviewedAt time.Time) error
}
