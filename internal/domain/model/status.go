package model

// OrderStatus describes order lifecycle position.
type OrderStatus string

const (
	OrderStatusPlaced         OrderStatus = "PLACED"
	OrderStatusPending        OrderStatus = "PENDING"
	OrderStatusConfirmed      OrderStatus = "CONFIRMED"
	OrderStatusPreparing      OrderStatus = "PREPARING"
	OrderStatusReady          OrderStatus = "READY"
	OrderStatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
)

// Statuses enumerates the canonical status vocabulary in lifecycle order.
var Statuses = []OrderStatus{
	OrderStatusPlaced,
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Terminal reports whether no further transition is permitted from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCancelled
}
