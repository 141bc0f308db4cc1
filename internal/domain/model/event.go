package model

import "time"

// OrderEventKind classifies notification events emitted by the workflow.
type OrderEventKind string

const (
	OrderEventPlaced        OrderEventKind = "order_placed"
	OrderEventStatusChanged OrderEventKind = "status_changed"
)

// OrderEvent is the message handed to the notification collaborator after a
// successful order mutation. Delivery is asynchronous and best-effort; the
// workflow never depends on it.
type OrderEvent struct {
	Kind         OrderEventKind `json:"kind"`
	OrderID      int64          `json:"order_id"`
	CustomerID   int64          `json:"customer_id"`
	RestaurantID int64          `json:"restaurant_id"`
	Status       OrderStatus    `json:"status"`
	TotalAmount  float64        `json:"total_amount"`
	OccurredAt   time.Time      `json:"occurred_at"`
}
