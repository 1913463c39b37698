package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/rumman321/e-Commerce-server/pkg/util"
)

const principalKey = "auth_principal"

// SessionCookieName is the cookie carrying the session credential.
const SessionCookieName = "token"

// Principal represents the authenticated caller, resolved from the verified
// email claim.
type Principal struct {
	Email string
}

// SessionMiddleware validates session credentials and loads principals.
type SessionMiddleware struct {
	tokens *TokenManager
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(tokens *TokenManager) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes. The credential is read
// from the session cookie first, then from a bearer Authorization header.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	tokenStr := c.Cookies(SessionCookieName)
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenStr = parts[1]
		}
	}
	if tokenStr == "" {
		return apperrors.NewUnauthorized("unauthorized access")
	}

	claims, err := m.tokens.ParseToken(tokenStr)
	if err != nil {
		return apperrors.NewUnauthorized("unauthorized access")
	}

	c.Locals(principalKey, &Principal{Email: claims.Email})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated identity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
