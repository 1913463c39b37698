package dto

import (
	"time"

	"github.com/rumman321/e-Commerce-server/internal/domain"
)

// OrderCustomer is the embedded customer identity on an order. The email is
// always taken from the session, never from this payload.
type OrderCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
}

// CreateOrderRequest payload for order placement.
type CreateOrderRequest struct {
	Customer OrderCustomer `json:"customer"`
	PlantID  string        `json:"plantId"`
	Quantity int           `json:"quantity"`
	Price    float64       `json:"price"`
	Phone    string        `json:"phone,omitempty"`
	Address  string        `json:"address,omitempty"`
}

// OrderResponse is the public projection of an order.
type OrderResponse struct {
	ID        string             `json:"id"`
	Customer  OrderCustomer      `json:"customer"`
	PlantID   string             `json:"plantId"`
	Quantity  int                `json:"quantity"`
	Price     float64            `json:"price"`
	Phone     string             `json:"phone,omitempty"`
	Address   string             `json:"address,omitempty"`
	Status    domain.OrderStatus `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
}

// CustomerOrderResponse is an order annotated with fields copied from its
// referenced plant; the raw plant object is never embedded.
type CustomerOrderResponse struct {
	OrderResponse
	Name     string `json:"name"`
	Image    string `json:"image,omitempty"`
	Category string `json:"category,omitempty"`
}

// NewOrderResponse projects a domain order.
func NewOrderResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID: order.ID,
		Customer: OrderCustomer{
			Name:  order.CustomerName,
			Email: order.CustomerEmail,
			Image: order.CustomerImage,
		},
		PlantID:   order.PlantID,
		Quantity:  order.Quantity,
		Price:     order.Price,
		Phone:     order.Phone,
		Address:   order.Address,
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
	}
}

// NewCustomerOrderResponse projects an enriched order.
func NewCustomerOrderResponse(order *domain.CustomerOrder) CustomerOrderResponse {
	return CustomerOrderResponse{
		OrderResponse: NewOrderResponse(&order.Order),
		Name:          order.PlantName,
		Image:         order.PlantImage,
		Category:      order.PlantCategory,
	}
}
