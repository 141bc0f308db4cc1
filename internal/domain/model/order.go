package model

import "time"

// OrderItem is a single order line.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order describes a food order placed by a customer with a restaurant.
type Order struct {
	ID            int64
	CustomerID    int64
	RestaurantID  int64
	Status        OrderStatus
	Items         []OrderItem
	TotalAmount   float64
	Address       string
	PaymentMethod string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Total sums item prices weighted by quantity.
func Total(items []OrderItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}
