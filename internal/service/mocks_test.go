package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/rumman321/e-Commerce-server/internal/domain"
	"github.com/rumman321/e-Commerce-server/internal/repository"
)

// In-memory repositories mirroring the Postgres implementations' contracts,
// including the guarded atomic decrement.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	cp := *user
	r.users[user.Email] = &cp
	return nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *user
	return &cp, nil
}

func (r *memUserRepo) ListExcluding(_ context.Context, email string) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.User
	for _, user := range r.users {
		if user.Email == email {
			continue
		}
		result = append(result, *user)
	}
	return result, nil
}

func (r *memUserRepo) UpdateStatus(_ context.Context, email string, status domain.UserStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[email]
	if !ok {
		return pgx.ErrNoRows
	}
	user.Status = status
	return nil
}

func (r *memUserRepo) UpdateRole(_ context.Context, email string, role domain.UserRole) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[email]
	if !ok {
		return pgx.ErrNoRows
	}
	user.Role = role
	user.Status = domain.UserStatusVerified
	return nil
}

type memPlantRepo struct {
	mu     sync.Mutex
	plants map[string]*domain.Plant
}

func newMemPlantRepo() *memPlantRepo {
	return &memPlantRepo{plants: make(map[string]*domain.Plant)}
}

func (r *memPlantRepo) Create(_ context.Context, plant *domain.Plant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	plant.ID = uuid.NewString()
	plant.CreatedAt = time.Now()
	plant.UpdatedAt = plant.CreatedAt
	cp := *plant
	r.plants[plant.ID] = &cp
	return nil
}

func (r *memPlantRepo) List(_ context.Context) ([]domain.Plant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Plant
	for _, plant := range r.plants {
		result = append(result, *plant)
	}
	return result, nil
}

func (r *memPlantRepo) GetByID(_ context.Context, id string) (*domain.Plant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	plant, ok := r.plants[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *plant
	return &cp, nil
}

func (r *memPlantRepo) AdjustQuantity(_ context.Context, id string, delta int, direction domain.AdjustDirection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	plant, ok := r.plants[id]
	if !ok {
		return pgx.ErrNoRows
	}
	if direction == domain.AdjustIncrease {
		plant.Quantity += delta
		return nil
	}
	if plant.Quantity < delta {
		return domain.ErrInsufficientStock
	}
	plant.Quantity -= delta
	return nil
}

type memOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
	plants *memPlantRepo
}

func newMemOrderRepo(plants *memPlantRepo) *memOrderRepo {
	return &memOrderRepo{orders: make(map[string]*domain.Order), plants: plants}
}

func (r *memOrderRepo) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order.ID = uuid.NewString()
	order.CreatedAt = time.Now()
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *memOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *order
	return &cp, nil
}

func (r *memOrderRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.orders, id)
	return nil
}

func (r *memOrderRepo) ListByCustomer(ctx context.Context, email string) ([]domain.CustomerOrder, error) {
	r.mu.Lock()
	orders := make([]domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		if order.CustomerEmail == email {
			orders = append(orders, *order)
		}
	}
	r.mu.Unlock()

	result := make([]domain.CustomerOrder, 0, len(orders))
	for _, order := range orders {
		enriched := domain.CustomerOrder{Order: order}
		if plant, err := r.plants.GetByID(ctx, order.PlantID); err == nil {
			enriched.PlantName = plant.Name
			enriched.PlantImage = plant.Image
			enriched.PlantCategory = plant.Category
		}
		result = append(result, enriched)
	}
	return result, nil
}

// memTxRunner hands the callback the shared in-memory repos. The services
// order their mutations so that a failed step aborts before any later write,
// which is what makes this stand-in equivalent to a rollback.
type memTxRunner struct {
	orders repository.OrderRepository
	plants repository.PlantRepository
}

func (t *memTxRunner) Run(ctx context.Context, fn func(orders repository.OrderRepository, plants repository.PlantRepository) error) error {
	return fn(t.orders, t.plants)
}
