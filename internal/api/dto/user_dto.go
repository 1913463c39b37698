package dto

import (
	"time"

	"github.com/rumman321/e-Commerce-server/internal/domain"
)

// UpsertUserRequest payload for self-registration.
type UpsertUserRequest struct {
	Name     string `json:"name"`
	Image    string `json:"image"`
	Password string `json:"password,omitempty"`
}

// SetRoleRequest payload for admin role updates.
type SetRoleRequest struct {
	Role domain.UserRole `json:"role"`
}

// RoleResponse carries the stored role, empty for unknown users.
type RoleResponse struct {
	Role domain.UserRole `json:"role"`
}

// UserResponse is the public projection of an account.
type UserResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Image     string            `json:"image,omitempty"`
	Role      domain.UserRole   `json:"role"`
	Status    domain.UserStatus `json:"status,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

// NewUserResponse projects a domain user, omitting the password hash.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Image:     user.Image,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
	}
}

// IssueTokenRequest payload for credential issuance.
type IssueTokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}
