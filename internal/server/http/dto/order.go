package dto

import (
	"time"

	"github.com/plateup/orderflow/internal/domain/model"
)

// OrderItemPayload is a single order line in requests and responses.
type OrderItemPayload struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// PlaceOrderRequest describes the order placement payload.
type PlaceOrderRequest struct {
	RestaurantID  int64              `json:"restaurant_id"`
	Items         []OrderItemPayload `json:"items"`
	Address       string             `json:"address"`
	PaymentMethod string             `json:"payment_method"`
}

// UpdateStatusRequest carries the target status for a transition attempt.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the wire representation of an order.
type OrderResponse struct {
	ID            int64              `json:"id"`
	CustomerID    int64              `json:"customer_id"`
	RestaurantID  int64              `json:"restaurant_id"`
	Status        string             `json:"status"`
	Items         []OrderItemPayload `json:"items,omitempty"`
	TotalAmount   float64            `json:"total_amount"`
	Address       string             `json:"address,omitempty"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// NewOrderResponse converts a domain order.
func NewOrderResponse(order *model.Order) OrderResponse {
	items := make([]OrderItemPayload, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemPayload{Name: item.Name, Quantity: item.Quantity, Price: item.Price})
	}
	return OrderResponse{
		ID:            order.ID,
		CustomerID:    order.CustomerID,
		RestaurantID:  order.RestaurantID,
		Status:        string(order.Status),
		Items:         items,
		TotalAmount:   order.TotalAmount,
		Address:       order.Address,
		PaymentMethod: order.PaymentMethod,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}
