package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rumman321/e-Commerce-server/internal/api/dto"
	"github.com/rumman321/e-Commerce-server/internal/auth"
	"github.com/rumman321/e-Commerce-server/internal/service"
	apperrors "github.com/rumman321/e-Commerce-server/pkg/util"
)

// UsersHandler exposes account and role endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// Upsert handles POST /users/:email. Registration is idempotent: a repeat
// registration returns the existing record unchanged.
func (h *UsersHandler) Upsert(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return apperrors.NewValidationError("email required", nil)
	}
	var req dto.UpsertUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, created, err := h.users.Register(c.UserContext(), email, service.RegisterInput{
		Name:     req.Name,
		Image:    req.Image,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// RequestRoleUpgrade handles PATCH /users/:email.
func (h *UsersHandler) RequestRoleUpgrade(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return apperrors.NewValidationError("email required", nil)
	}
	if err := h.users.RequestRoleUpgrade(c.UserContext(), email); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// ListOthers handles GET /all-users/:email (admin only).
func (h *UsersHandler) ListOthers(c *fiber.Ctx) error {
	email := c.Params("email")
	users, err := h.users.ListOthers(c.UserContext(), email)
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// SetRole handles PATCH /user/role/:email (admin only).
func (h *UsersHandler) SetRole(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthorized access")
	}
	email := c.Params("email")
	var req dto.SetRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.users.SetRole(c.UserContext(), principal.Email, email, req.Role); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// GetRole handles GET /users/role/:email. Public; unknown users yield an
// empty role.
func (h *UsersHandler) GetRole(c *fiber.Ctx) error {
	role, err := h.users.GetRole(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(dto.RoleResponse{Role: role})
}
