package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/rumman321/e-Commerce-server/internal/domain"
)

// OrderRepository encapsulates order-ledger persistence.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
	ListByCustomer(ctx context.Context, email string) ([]domain.CustomerOrder, error)
}

type orderRepository struct {
	q Querier
}

// NewOrderRepository instantiates repository.
func NewOrderRepository(q Querier) OrderRepository {
	return &orderRepository{q: q}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	const query = `
        INSERT INTO orders (customer_name, customer_email, customer_image, plant_id, quantity, price, phone, address, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at`

	return r.q.QueryRow(ctx, query,
		order.CustomerName,
		order.CustomerEmail,
		order.CustomerImage,
		order.PlantID,
		order.Quantity,
		order.Price,
		order.Phone,
		order.Address,
		order.Status,
	).Scan(&order.ID, &order.CreatedAt)
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const query = `
        SELECT id, customer_name, customer_email, customer_image, plant_id, quantity, price, phone, address, status, created_at
        FROM orders WHERE id=$1`

	var order domain.Order
	if err := r.q.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.CustomerName,
		&order.CustomerEmail,
		&order.CustomerImage,
		&order.PlantID,
		&order.Quantity,
		&order.Price,
		&order.Phone,
		&order.Address,
		&order.Status,
		&order.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListByCustomer returns the customer's orders joined with catalog fields.
// The join is a LEFT JOIN: orders whose plant no longer resolves are kept
// with empty projections instead of being dropped.
func (r *orderRepository) ListByCustomer(ctx context.Context, email string) ([]domain.CustomerOrder, error) {
	const query = `
        SELECT o.id, o.customer_name, o.customer_email, o.customer_image, o.plant_id, o.quantity, o.price,
               o.phone, o.address, o.status, o.created_at,
               COALESCE(p.name, ''), COALESCE(p.image, ''), COALESCE(p.category, '')
        FROM orders o
        LEFT JOIN plants p ON p.id = o.plant_id
        WHERE o.customer_email = $1
        ORDER BY o.created_at DESC`

	rows, err := r.q.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.CustomerOrder
	for rows.Next() {
		var order domain.CustomerOrder
		if err := rows.Scan(
			&order.ID,
			&order.CustomerName,
			&order.CustomerEmail,
			&order.CustomerImage,
			&order.PlantID,
			&order.Quantity,
			&order.Price,
			&order.Phone,
			&order.Address,
			&order.Status,
			&order.CreatedAt,
			&order.PlantName,
			&order.PlantImage,
			&order.PlantCategory,
		); err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	return result, rows.Err()
}
