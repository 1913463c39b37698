package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/rumman321/e-Commerce-server/internal/domain"
	"github.com/rumman321/e-Commerce-server/internal/events"
	"github.com/rumman321/e-Commerce-server/internal/repository"
	apperrors "github.com/rumman321/e-Commerce-server/pkg/util"
)

// TxRunner runs a callback against order and plant repositories bound to a
// single unit of work.
type TxRunner interface {
	Run(ctx context.Context, fn func(orders repository.OrderRepository, plants repository.PlantRepository) error) error
}

// OrderService coordinates the order lifecycle with inventory consistency.
type OrderService struct {
	orders     repository.OrderRepository
	tx         TxRunner
	dispatcher events.Dispatcher
}

// OrderDependencies bundles requirements for the order service.
type OrderDependencies struct {
	OrderRepo  repository.OrderRepository
	Tx         TxRunner
	Dispatcher events.Dispatcher
}

// NewOrderService constructs the service.
func NewOrderService(deps OrderDependencies) *OrderService {
	return &OrderService{
		orders:     deps.OrderRepo,
		tx:         deps.Tx,
		dispatcher: deps.Dispatcher,
	}
}

// OrderCreateInput describes the order placement payload. The customer email
// always comes from the verified session identity, never from the client.
type OrderCreateInput struct {
	CustomerName  string
	CustomerImage string
	PlantID       string
	Quantity      int
	Price         float64
	Phone         string
	Address       string
}

// PlaceOrder inserts the order and decrements the plant's stock in one
// transaction, so a crash between the two cannot leave them inconsistent and
// concurrent placements cannot oversell.
func (s *OrderService) PlaceOrder(ctx context.Context, customerEmail string, input OrderCreateInput) (*domain.Order, error) {
	if input.PlantID == "" {
		return nil, apperrors.NewValidationError("plantId required", nil)
	}
	if input.Quantity <= 0 {
		return nil, apperrors.NewValidationError("quantity must be positive", nil)
	}

	order := &domain.Order{
		CustomerName:  input.CustomerName,
		CustomerEmail: customerEmail,
		CustomerImage: input.CustomerImage,
		PlantID:       input.PlantID,
		Quantity:      input.Quantity,
		Price:         input.Price,
		Phone:         input.Phone,
		Address:       input.Address,
		Status:        domain.OrderStatusPending,
	}

	err := s.tx.Run(ctx, func(orders repository.OrderRepository, plants repository.PlantRepository) error {
		if err := plants.AdjustQuantity(ctx, order.PlantID, order.Quantity, domain.AdjustDecrease); err != nil {
			return err
		}
		return orders.Create(ctx, order)
	})
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, apperrors.NewNotFound("plant", map[string]any{"id": order.PlantID})
		case errors.Is(err, domain.ErrInsufficientStock):
			return nil, apperrors.NewConflict("insufficient stock", map[string]any{"id": order.PlantID})
		default:
			return nil, err
		}
	}

	s.publishEvent(ctx, events.Event{
		Type:  events.EventOrderPlaced,
		Actor: events.Actor{Email: customerEmail},
		Payload: events.OrderPlacedPayload{
			OrderID:  order.ID,
			PlantID:  order.PlantID,
			Quantity: order.Quantity,
			Price:    order.Price,
		},
	})
	return order, nil
}

// CancelOrder removes a not-yet-delivered order and returns its quantity to
// the plant in the same transaction. A delivered order is immutable and the
// cancellation fails with a conflict; a missing order fails with not-found
// before any status check.
func (s *OrderService) CancelOrder(ctx context.Context, actorEmail, id string) error {
	var cancelled *domain.Order
	err := s.tx.Run(ctx, func(orders repository.OrderRepository, plants repository.PlantRepository) error {
		order, err := orders.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFound("order", map[string]any{"id": id})
			}
			return err
		}
		if order.Status == domain.OrderStatusDelivered {
			return apperrors.NewConflict("Order already delivered", nil)
		}
		if err := orders.Delete(ctx, order.ID); err != nil {
			return err
		}
		// The referenced plant may no longer resolve; the cancellation still
		// stands in that case.
		if err := plants.AdjustQuantity(ctx, order.PlantID, order.Quantity, domain.AdjustIncrease); err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		cancelled = order
		return nil
	})
	if err != nil {
		return err
	}

	s.publishEvent(ctx, events.Event{
		Type:  events.EventOrderCancelled,
		Actor: events.Actor{Email: actorEmail},
		Payload: events.OrderCancelledPayload{
			OrderID:  cancelled.ID,
			PlantID:  cancelled.PlantID,
			Quantity: cancelled.Quantity,
		},
	})
	return nil
}

// ListCustomerOrders returns the customer's orders enriched with the
// referenced plant's name, image and category.
func (s *OrderService) ListCustomerOrders(ctx context.Context, email string) ([]domain.CustomerOrder, error) {
	return s.orders.ListByCustomer(ctx, email)
}

func (s *OrderService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
