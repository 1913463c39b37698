package events

import (
	"time"

	"github.com/rumman321/e-Commerce-server/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrderPlaced     EventType = "order_placed"
	EventOrderCancelled  EventType = "order_cancelled"
	EventStockAdjusted   EventType = "stock_adjusted"
	EventUserRoleChanged EventType = "user_role_changed"
)

// Actor identifies who triggered an event.
type Actor struct {
	Email string `json:"email"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// OrderPlacedPayload payload.
type OrderPlacedPayload struct {
	OrderID  string  `json:"order_id"`
	PlantID  string  `json:"plant_id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderCancelledPayload payload.
type OrderCancelledPayload struct {
	OrderID  string `json:"order_id"`
	PlantID  string `json:"plant_id"`
	Quantity int    `json:"quantity"`
}

// StockAdjustedPayload payload.
type StockAdjustedPayload struct {
	PlantID   string                 `json:"plant_id"`
	Delta     int                    `json:"delta"`
	Direction domain.AdjustDirection `json:"direction"`
}

// UserRoleChangedPayload payload.
type UserRoleChangedPayload struct {
	Email   string          `json:"email"`
	NewRole domain.UserRole `json:"new_role"`
}
