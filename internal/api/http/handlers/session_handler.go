package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rumman321/e-Commerce-server/internal/api/dto"
	"github.com/rumman321/e-Commerce-server/internal/auth"
	"github.com/rumman321/e-Commerce-server/internal/service"
	apperrors "github.com/rumman321/e-Commerce-server/pkg/util"
)

// SessionHandler issues and clears the session cookie.
type SessionHandler struct {
	tokens  *auth.TokenManager
	users   *service.UserService
	cookies auth.CookieSettings
}

// NewSessionHandler constructs handler.
func NewSessionHandler(tokens *auth.TokenManager, users *service.UserService, cookies auth.CookieSettings) *SessionHandler {
	return &SessionHandler{tokens: tokens, users: users, cookies: cookies}
}

// Issue handles POST /jwt: signs a credential for the email and sets it as an
// httpOnly cookie. When the account has a stored password it must match.
func (h *SessionHandler) Issue(c *fiber.Ctx) error {
	var req dto.IssueTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" {
		return apperrors.NewValidationError("email required", nil)
	}
	if err := h.users.CheckCredential(c.UserContext(), req.Email, req.Password); err != nil {
		return err
	}

	token, expiresAt, err := h.tokens.GenerateToken(req.Email)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Cookie(h.cookies.SessionCookie(token, expiresAt))
	return c.JSON(fiber.Map{"success": true})
}

// Logout handles GET /logout: clears the session cookie.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(h.cookies.ClearedSessionCookie())
	return c.JSON(fiber.Map{"success": true})
}
