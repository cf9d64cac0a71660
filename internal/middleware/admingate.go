package middleware

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// AdminChecker answers whether an email belongs to a platform administrator.
type AdminChecker interface {
	CheckAdmin(ctx context.Context, email string) (bool, error)
}

// AdminGate restricts a route group to administrators. Runs after AuthGate.
// Both a negative answer and a check failure redirect to the home page; the
// error is never shown so gated content is not hinted at.
func AdminGate(checker AdminChecker, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals(LocalUserEmail).(string)
		if email == "" {
			return c.Redirect("/", fiber.StatusFound)
		}

		isAdmin, err := checker.CheckAdmin(c.UserContext(), email)
		if err != nil {
			logger.Debug("admin check failed", slog.String("email", email), slog.Any("error", err))
			return c.Redirect("/", fiber.StatusFound)
		}
		if !isAdmin {
			return c.Redirect("/", fiber.StatusFound)
		}

		return c.Next()
	}
}
