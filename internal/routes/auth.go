package routes

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fundezy-io/fundezy-web/internal/auth"
	"github.com/fundezy-io/fundezy-web/internal/middleware"
)

// RegisterAuthRoutes wires sign-in and sign-out against the auth provider.
// Sign-in sets the session cookie alongside returning the token so both the
// page surface and API clients can authenticate.
func RegisterAuthRoutes(r fiber.Router, provider auth.Provider, sessions *auth.Sessions) {
	r.Post("/auth/signin", func(c *fiber.Ctx) error {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		if req.Email == "" || req.Password == "" {
			return fiber.NewError(http.StatusBadRequest, "email and password are required")
		}

		user, err := provider.SignIn(c.UserContext(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				return fiber.NewError(http.StatusUnauthorized, err.Error())
			}
			return fiber.NewError(http.StatusBadGateway, "authentication service unavailable")
		}

		token, err := sessions.Issue(user)
		if err != nil {
			return fiber.NewError(http.StatusInternalServerError, "failed to issue session")
		}

		c.Cookie(&fiber.Cookie{
			Name:     middleware.SessionCookie,
			Value:    token,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Expires:  time.Now().Add(24 * time.Hour),
		})

		return c.Status(http.StatusOK).JSON(fiber.Map{
			"token":         token,
			"email":         user.Email,
			"emailVerified": user.EmailVerified,
		})
	})

	r.Post("/auth/signout", func(c *fiber.Ctx) error {
		if token := c.Cookies(middleware.SessionCookie); token != "" {
			if session, err := sessions.Verify(token); err == nil {
				// Bumps the provider-side token version so stale
				// sessions stop verifying.
				_ = provider.SignOut(c.UserContext(), session.UserID)
			}
		}

		c.Cookie(&fiber.Cookie{
			Name:     middleware.SessionCookie,
			Value:    "",
			HTTPOnly: true,
			Expires:  time.Now().Add(-time.Hour),
		})
		return c.Status(http.StatusOK).JSON(fiber.Map{"signedOut": true})
	})
}
