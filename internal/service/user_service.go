package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/rumman321/e-Commerce-server/internal/auth"
	"github.com/rumman321/e-Commerce-server/internal/config"
	"github.com/rumman321/e-Commerce-server/internal/domain"
	"github.com/rumman321/e-Commerce-server/internal/events"
	"github.com/rumman321/e-Commerce-server/internal/repository"
	apperrors "github.com/rumman321/e-Commerce-server/pkg/util"
)

// UserService coordinates account lifecycle and role management.
type UserService struct {
	users      repository.UserRepository
	authority  *auth.RoleAuthority
	dispatcher events.Dispatcher
	bcryptCost int
}

// UserDependencies bundles requirements for the user service.
type UserDependencies struct {
	UserRepo   repository.UserRepository
	Authority  *auth.RoleAuthority
	Dispatcher events.Dispatcher
}

// NewUserService builds the service.
func NewUserService(cfg config.Config, deps UserDependencies) *UserService {
	return &UserService{
		users:      deps.UserRepo,
		authority:  deps.Authority,
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// RegisterInput describes the self-registration payload. Password is
// optional; accounts created through an external auth provider have none.
type RegisterInput struct {
	Name     string
	Image    string
	Password string
}

// Register creates the account on first registration and is idempotent: a
// repeat registration returns the existing record unchanged. New accounts
// default to the customer role.
func (s *UserService) Register(ctx context.Context, email string, input RegisterInput) (*domain.User, bool, error) {
	existing, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	user := &domain.User{
		Name:   strings.TrimSpace(input.Name),
		Email:  email,
		Image:  input.Image,
		Role:   domain.UserRoleCustomer,
		Status: domain.UserStatusNone,
	}
	if input.Password != "" {
		hash, err := auth.HashPassword(input.Password, s.bcryptCost)
		if err != nil {
			return nil, false, err
		}
		user.PasswordHash = &hash
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}

// RequestRoleUpgrade marks the account as awaiting an admin decision. A
// repeat request while one is pending is rejected.
func (s *UserService) RequestRoleUpgrade(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", nil)
		}
		return err
	}
	if user.Status == domain.UserStatusRequested {
		return apperrors.NewConflict("You have already requested", nil)
	}
	return s.users.UpdateStatus(ctx, email, domain.UserStatusRequested)
}

// SetRole updates the stored role and forces status to Verified. Callers must
// already be authorized as admin by the middleware chain.
func (s *UserService) SetRole(ctx context.Context, actorEmail, email string, role domain.UserRole) error {
	if !role.Valid() {
		return apperrors.NewValidationError("unknown role", map[string]any{"role": role})
	}
	if err := s.users.UpdateRole(ctx, email, role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", nil)
		}
		return err
	}
	s.authority.Invalidate(ctx, email)
	s.publishEvent(ctx, events.Event{
		Type:  events.EventUserRoleChanged,
		Actor: events.Actor{Email: actorEmail},
		Payload: events.UserRoleChangedPayload{
			Email:   email,
			NewRole: role,
		},
	})
	return nil
}

// GetRole returns the stored role, or the empty role for unknown users.
func (s *UserService) GetRole(ctx context.Context, email string) (domain.UserRole, error) {
	return s.authority.Role(ctx, email)
}

// ListOthers returns every account except the caller's own.
func (s *UserService) ListOthers(ctx context.Context, email string) ([]domain.User, error) {
	return s.users.ListExcluding(ctx, email)
}

// CheckCredential verifies an optional password prior to credential issuance.
// Accounts without a stored record or a stored password are trusted on email
// alone, preserving the external-auth-provider flow.
func (s *UserService) CheckCredential(ctx context.Context, email, password string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}
	if user.PasswordHash == nil {
		return nil
	}
	if err := auth.ComparePassword(*user.PasswordHash, password); err != nil {
		return apperrors.NewUnauthorized("invalid credentials")
	}
	return nil
}

func (s *UserService) publishEvent(ctx context.Context, event events.Event) {
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
