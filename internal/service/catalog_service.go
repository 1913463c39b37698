package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/rumman321/e-Commerce-server/internal/domain"
	"github.com/rumman321/e-Commerce-server/internal/events"
	"github.com/rumman321/e-Commerce-server/internal/repository"
	apperrors "github.com/rumman321/e-Commerce-server/pkg/util"
)

// CatalogService coordinates plant catalog operations.
type CatalogService struct {
	plants     repository.PlantRepository
	dispatcher events.Dispatcher
}

// NewCatalogService constructs the service.
func NewCatalogService(plants repository.PlantRepository, dispatcher events.Dispatcher) *CatalogService {
	return &CatalogService{plants: plants, dispatcher: dispatcher}
}

// PlantCreateInput describes the plant creation payload.
type PlantCreateInput struct {
	Name        string
	Image       string
	Category    string
	Description string
	Price       float64
	Quantity    int
}

// CreatePlant stores a new catalog item for the authenticated seller.
func (s *CatalogService) CreatePlant(ctx context.Context, sellerName, sellerEmail string, input PlantCreateInput) (*domain.Plant, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}
	if input.Price < 0 {
		return nil, apperrors.NewValidationError("price must not be negative", nil)
	}
	if input.Quantity < 0 {
		return nil, apperrors.NewValidationError("quantity must not be negative", nil)
	}

	plant := &domain.Plant{
		Name:        name,
		Image:       input.Image,
		Category:    input.Category,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		SellerName:  sellerName,
		SellerEmail: sellerEmail,
	}
	if err := s.plants.Create(ctx, plant); err != nil {
		return nil, err
	}
	return plant, nil
}

// ListPlants returns the whole catalog.
func (s *CatalogService) ListPlants(ctx context.Context) ([]domain.Plant, error) {
	return s.plants.List(ctx)
}

// GetPlant returns one catalog item.
func (s *CatalogService) GetPlant(ctx context.Context, id string) (*domain.Plant, error) {
	plant, err := s.plants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("plant", map[string]any{"id": id})
		}
		return nil, err
	}
	return plant, nil
}

// AdjustQuantity applies a stock delta. Direction defaults to decrease; a
// decrease that would drive the quantity negative is rejected.
func (s *CatalogService) AdjustQuantity(ctx context.Context, actorEmail, id string, delta int, direction domain.AdjustDirection) error {
	if delta <= 0 {
		return apperrors.NewValidationError("quantity delta must be positive", nil)
	}
	if direction != domain.AdjustIncrease {
		direction = domain.AdjustDecrease
	}

	if err := s.plants.AdjustQuantity(ctx, id, delta, direction); err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return apperrors.NewNotFound("plant", map[string]any{"id": id})
		case errors.Is(err, domain.ErrInsufficientStock):
			return apperrors.NewConflict("insufficient stock", map[string]any{"id": id})
		default:
			return err
		}
	}

	s.publishEvent(ctx, events.Event{
		Type:  events.EventStockAdjusted,
		Actor: events.Actor{Email: actorEmail},
		Payload: events.StockAdjustedPayload{
			PlantID:   id,
			Delta:     delta,
			Direction: direction,
		},
	})
	return nil
}

func (s *CatalogService) publishEvent(ctx context.Context, event events.Event) {
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
