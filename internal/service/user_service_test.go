package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rumman321/e-Commerce-server/internal/auth"
	"github.com/rumman321/e-Commerce-server/internal/config"
	"github.com/rumman321/e-Commerce-server/internal/domain"
	apperrors "github.com/rumman321/e-Commerce-server/pkg/util"
)

func newUserService(t *testing.T) (*UserService, *memUserRepo) {
	t.Helper()
	repo := newMemUserRepo()
	authority := auth.NewRoleAuthority(repo, auth.NewRoleCache(nil, time.Minute))
	cfg := config.Config{Auth: config.AuthConfig{BcryptCost: 4}}
	svc := NewUserService(cfg, UserDependencies{UserRepo: repo, Authority: authority})
	return svc, repo
}

func TestRegisterIsIdempotent(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	first, created, err := svc.Register(ctx, "a@x.com", RegisterInput{Name: "Alma"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, domain.UserRoleCustomer, first.Role)
	assert.Equal(t, domain.UserStatusNone, first.Status)

	second, created, err := svc.Register(ctx, "a@x.com", RegisterInput{Name: "Someone Else"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, first.Role, second.Role)
	assert.True(t, first.CreatedAt.Equal(second.CreatedAt))
}

func TestRequestRoleUpgrade(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "a@x.com", RegisterInput{})
	require.NoError(t, err)

	require.NoError(t, svc.RequestRoleUpgrade(ctx, "a@x.com"))
	user, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, domain.UserStatusRequested, user.Status)

	err = svc.RequestRoleUpgrade(ctx, "a@x.com")
	assertDomainError(t, err, 409)
	user, err = repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, domain.UserStatusRequested, user.Status)
}

func TestRequestRoleUpgradeUnknownUser(t *testing.T) {
	svc, _ := newUserService(t)
	err := svc.RequestRoleUpgrade(context.Background(), "missing@x.com")
	assertDomainError(t, err, 404)
}

func TestSetRoleForcesVerified(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	for _, initial := range []domain.UserStatus{domain.UserStatusNone, domain.UserStatusRequested, domain.UserStatusVerified} {
		_, _, err := svc.Register(ctx, "a@x.com", RegisterInput{})
		require.NoError(t, err)
		require.NoError(t, repo.UpdateStatus(ctx, "a@x.com", initial))

		require.NoError(t, svc.SetRole(ctx, "admin@x.com", "a@x.com", domain.UserRoleAdmin))
		user, err := repo.GetByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, domain.UserRoleAdmin, user.Role)
		assert.Equal(t, domain.UserStatusVerified, user.Status)
	}
}

func TestSetRoleRejectsUnknownRole(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()
	_, _, err := svc.Register(ctx, "a@x.com", RegisterInput{})
	require.NoError(t, err)

	err = svc.SetRole(ctx, "admin@x.com", "a@x.com", domain.UserRole("superuser"))
	assertDomainError(t, err, 400)
}

func TestSetRoleUnknownUser(t *testing.T) {
	svc, _ := newUserService(t)
	err := svc.SetRole(context.Background(), "admin@x.com", "missing@x.com", domain.UserRoleAdmin)
	assertDomainError(t, err, 404)
}

func TestGetRole(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	role, err := svc.GetRole(ctx, "missing@x.com")
	require.NoError(t, err)
	assert.Equal(t, domain.UserRole(""), role)

	_, _, err = svc.Register(ctx, "a@x.com", RegisterInput{})
	require.NoError(t, err)
	role, err = svc.GetRole(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, domain.UserRoleCustomer, role)
}

func TestCheckCredential(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	// Unknown accounts are trusted on email alone.
	require.NoError(t, svc.CheckCredential(ctx, "missing@x.com", ""))

	_, _, err := svc.Register(ctx, "open@x.com", RegisterInput{})
	require.NoError(t, err)
	require.NoError(t, svc.CheckCredential(ctx, "open@x.com", "anything"))

	_, _, err = svc.Register(ctx, "locked@x.com", RegisterInput{Password: "hunter2"})
	require.NoError(t, err)
	require.NoError(t, svc.CheckCredential(ctx, "locked@x.com", "hunter2"))
	assertDomainError(t, svc.CheckCredential(ctx, "locked@x.com", "wrong"), 401)
}

func TestListOthersExcludesCaller(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()
	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		_, _, err := svc.Register(ctx, email, RegisterInput{})
		require.NoError(t, err)
	}

	users, err := svc.ListOthers(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, user := range users {
		assert.NotEqual(t, "a@x.com", user.Email)
	}
}

func assertDomainError(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, status, de.HTTPStatus)
}
