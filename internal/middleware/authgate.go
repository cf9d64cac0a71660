package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fundezy-io/fundezy-web/internal/auth"
)

// Locals keys populated by the auth gate.
const (
	LocalUserID    = "user_id"
	LocalUserEmail = "user_email"
)

// SessionCookie carries the session token for browser navigation; API
// clients use the Authorization header instead.
const SessionCookie = "fundezy_session"

// AuthGate protects a route group with session verification. A missing or
// invalid session redirects to the sign-in page instead of rendering an
// error; an unverified email redirects to the verification page.
func AuthGate(sessions *auth.Sessions, provider auth.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			token = c.Cookies(SessionCookie)
		}
		if token == "" {
			return c.Redirect("/signin", fiber.StatusFound)
		}

		session, err := sessions.Verify(token)
		if err != nil {
			return c.Redirect("/signin", fiber.StatusFound)
		}

		// Sign-out bumps the provider-side token version; stale sessions
		// stop verifying here.
		user, err := provider.UserByID(c.UserContext(), session.UserID)
		if err != nil || user.TokenVersion != session.TokenVersion {
			return c.Redirect("/signin", fiber.StatusFound)
		}

		if !session.EmailVerified {
			return c.Redirect("/verify-email", fiber.StatusFound)
		}

		c.Locals(LocalUserID, session.UserID)
		c.Locals(LocalUserEmail, session.Email)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	authz := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		return ""
	}
	return strings.TrimSpace(authz[len("Bearer "):])
}
