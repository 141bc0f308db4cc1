package dto

import (
	"time"

	"github.com/plateup/orderflow/internal/domain/model"
)

// RequestResponse is the wire representation of a status-change request.
type RequestResponse struct {
	ID           int64      `json:"id"`
	OrderID      int64      `json:"order_id"`
	RestaurantID int64      `json:"restaurant_id"`
	RequestedBy  int64      `json:"requested_by"`
	FromStatus   string     `json:"from_status"`
	ToStatus     string     `json:"to_status"`
	Decision     string     `json:"decision"`
	ReviewedBy   *int64     `json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// NewRequestResponse converts a domain status-change request.
func NewRequestResponse(request *model.StatusChangeRequest) RequestResponse {
	return RequestResponse{
		ID:           request.ID,
		OrderID:      request.OrderID,
		RestaurantID: request.RestaurantID,
		RequestedBy:  request.RequestedBy,
		FromStatus:   string(request.FromStatus),
		ToStatus:     string(request.ToStatus),
		Decision:     string(request.Decision),
		ReviewedBy:   request.ReviewedBy,
		ReviewedAt:   request.ReviewedAt,
		CreatedAt:    request.CreatedAt,
	}
}
