package domain

import "time"

// OrderStatus enumerates lifecycle states for orders. Delivered is terminal:
// a delivered order can never be cancelled.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// Order records a purchase of a single catalog item.
type Order struct {
	ID            string
	CustomerName  string
	CustomerEmail string
	CustomerImage string
	PlantID       string
	Quantity      int
	Price         float64
	Phone         string
	Address       string
	Status        OrderStatus
	CreatedAt     time.Time
}

// CustomerOrder is an order joined with fields from its referenced plant.
// When the plant no longer resolves the projected fields stay empty.
type CustomerOrder struct {
	Order
	PlantName     string
	PlantImage    string
	PlantCategory string
}
