package auth

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/rumman321/e-Commerce-server/internal/domain"
	"github.com/rumman321/e-Commerce-server/internal/repository"
	apperrors "github.com/rumman321/e-Commerce-server/pkg/util"
)

// RoleAuthority resolves the stored role for a verified identity. Lookups go
// through the role cache first, then the users table.
type RoleAuthority struct {
	users repository.UserRepository
	cache *RoleCache
}

// NewRoleAuthority constructs the authority.
func NewRoleAuthority(users repository.UserRepository, cache *RoleCache) *RoleAuthority {
	return &RoleAuthority{users: users, cache: cache}
}

// Role returns the stored role for the email, or the empty role when no such
// user exists.
func (a *RoleAuthority) Role(ctx context.Context, email string) (domain.UserRole, error) {
	if role, ok := a.cache.Get(ctx, email); ok {
		return role, nil
	}
	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	a.cache.Set(ctx, email, user.Role)
	return user.Role, nil
}

// Invalidate drops any cached role for the email.
func (a *RoleAuthority) Invalidate(ctx context.Context, email string) {
	a.cache.Invalidate(ctx, email)
}

// RequireAdmin ensures the authenticated caller's stored role is admin. The
// lookup always uses the email claim from the verified credential, so a
// client cannot spoof the privilege check. Must run after SessionMiddleware.
func RequireAdmin(authority *RoleAuthority) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("unauthorized access")
		}
		role, err := authority.Role(c.UserContext(), principal.Email)
		if err != nil {
			return apperrors.MapError(err)
		}
		if role != domain.UserRoleAdmin {
			return apperrors.NewForbidden("Forbidden access. Admin Only")
		}
		return c.Next()
	}
}
