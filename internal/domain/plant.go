package domain

import "time"

// AdjustDirection selects how a quantity delta is applied.
type AdjustDirection string

const (
	AdjustIncrease AdjustDirection = "increase"
	AdjustDecrease AdjustDirection = "decrease"
)

// Plant is a catalog item. Quantity is only mutated through order-driven
// adjustment and never goes below zero.
type Plant struct {
	ID          string
	Name        string
	Image       string
	Category    string
	Description string
	Price       float64
	Quantity    int
	SellerName  string
	SellerEmail string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
