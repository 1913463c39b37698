package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/rumman321/e-Commerce-server/internal/domain"
)

// PlantRepository encapsulates catalog persistence.
type PlantRepository interface {
	Create(ctx context.Context, plant *domain.Plant) error
	List(ctx context.Context) ([]domain.Plant, error)
	GetByID(ctx context.Context, id string) (*domain.Plant, error)
	AdjustQuantity(ctx context.Context, id string, delta int, direction domain.AdjustDirection) error
}

type plantRepository struct {
	q Querier
}

// NewPlantRepository instantiates repository.
func NewPlantRepository(q Querier) PlantRepository {
	return &plantRepository{q: q}
}

func (r *plantRepository) Create(ctx context.Context, plant *domain.Plant) error {
	const query = `
        INSERT INTO plants (name, image, category, description, price, quantity, seller_name, seller_email)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`

	return r.q.QueryRow(ctx, query,
		plant.Name,
		plant.Image,
		plant.Category,
		plant.Description,
		plant.Price,
		plant.Quantity,
		plant.SellerName,
		plant.SellerEmail,
	).Scan(&plant.ID, &plant.CreatedAt, &plant.UpdatedAt)
}

func (r *plantRepository) List(ctx context.Context) ([]domain.Plant, error) {
	const query = `
        SELECT id, name, image, category, description, price, quantity, seller_name, seller_email, created_at, updated_at
        FROM plants ORDER BY created_at DESC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Plant
	for rows.Next() {
		var plant domain.Plant
		if err := scanPlant(rows, &plant); err != nil {
			return nil, err
		}
		result = append(result, plant)
	}
	return result, rows.Err()
}

func (r *plantRepository) GetByID(ctx context.Context, id string) (*domain.Plant, error) {
	const query = `
        SELECT id, name, image, category, description, price, quantity, seller_name, seller_email, created_at, updated_at
        FROM plants WHERE id=$1`

	var plant domain.Plant
	if err := scanPlant(r.q.QueryRow(ctx, query, id), &plant); err != nil {
		return nil, err
	}
	return &plant, nil
}

// AdjustQuantity applies the delta atomically. Concurrent adjustments on the
// same id serialize on the row; a decrease only matches when enough stock
// remains, so the quantity can never go negative.
func (r *plantRepository) AdjustQuantity(ctx context.Context, id string, delta int, direction domain.AdjustDirection) error {
	if direction == domain.AdjustIncrease {
		const query = `UPDATE plants SET quantity = quantity + $1, updated_at = NOW() WHERE id=$2`
		cmd, err := r.q.Exec(ctx, query, delta, id)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	}

	const query = `UPDATE plants SET quantity = quantity - $1, updated_at = NOW() WHERE id=$2 AND quantity >= $1`
	cmd, err := r.q.Exec(ctx, query, delta, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}

	// Distinguish a missing plant from an unsatisfiable decrement.
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM plants WHERE id=$1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return pgx.ErrNoRows
	}
	return domain.ErrInsufficientStock
}

func scanPlant(row pgx.Row, plant *domain.Plant) error {
	return row.Scan(
		&plant.ID,
		&plant.Name,
		&plant.Image,
		&plant.Category,
		&plant.Description,
		&plant.Price,
		&plant.Quantity,
		&plant.SellerName,
		&plant.SellerEmail,
		&plant.CreatedAt,
		&plant.UpdatedAt,
	)
}
