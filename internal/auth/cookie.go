package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieSettings controls the attributes of the session cookie. In production
// the cookie is Secure with SameSite=None for cross-site frontends; otherwise
// it stays Lax over plain HTTP.
type CookieSettings struct {
	Secure   bool
	SameSite string
}

// CookieSettingsForEnv derives settings from the deployment environment.
func CookieSettingsForEnv(production bool) CookieSettings {
	if production {
		return CookieSettings{Secure: true, SameSite: fiber.CookieSameSiteNoneMode}
	}
	return CookieSettings{Secure: false, SameSite: fiber.CookieSameSiteLaxMode}
}

// SessionCookie builds the httpOnly cookie carrying the credential.
func (s CookieSettings) SessionCookie(token string, expiresAt time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   s.Secure,
		SameSite: s.SameSite,
	}
}

// ClearedSessionCookie builds an immediately expiring cookie for logout.
func (s CookieSettings) ClearedSessionCookie() *fiber.Cookie {
	return &fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   s.Secure,
		SameSite: s.SameSite,
	}
}
