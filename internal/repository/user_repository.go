package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/rumman321/e-Commerce-server/internal/domain"
)

// UserRepository defines persistence access for marketplace accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListExcluding(ctx context.Context, email string) ([]domain.User, error)
	UpdateStatus(ctx context.Context, email string, status domain.UserStatus) error
	UpdateRole(ctx context.Context, email string, role domain.UserRole) error
}

type userRepository struct {
	q Querier
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(q Querier) UserRepository {
	return &userRepository{q: q}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (name, email, image, password_hash, role, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`

	return r.q.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.Image,
		user.PasswordHash,
		user.Role,
		user.Status,
	).Scan(&user.ID, &user.CreatedAt)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT id, name, email, image, password_hash, role, status, created_at
        FROM users WHERE email=$1`

	var user domain.User
	if err := r.q.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Image,
		&user.PasswordHash,
		&user.Role,
		&user.Status,
		&user.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListExcluding(ctx context.Context, email string) ([]domain.User, error) {
	const query = `
        SELECT id, name, email, image, password_hash, role, status, created_at
        FROM users WHERE email <> $1 ORDER BY created_at DESC`

	rows, err := r.q.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Image,
			&user.PasswordHash,
			&user.Role,
			&user.Status,
			&user.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, user)
	}
	return result, rows.Err()
}

func (r *userRepository) UpdateStatus(ctx context.Context, email string, status domain.UserStatus) error {
	const query = `UPDATE users SET status=$1 WHERE email=$2`

	cmd, err := r.q.Exec(ctx, query, status, email)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdateRole sets the role and forces status to Verified in a single
// atomic statement.
func (r *userRepository) UpdateRole(ctx context.Context, email string, role domain.UserRole) error {
	const query = `UPDATE users SET role=$1, status=$2 WHERE email=$3`

	cmd, err := r.q.Exec(ctx, query, role, domain.UserStatusVerified, email)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
