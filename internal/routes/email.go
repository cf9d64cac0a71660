package routes

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fundezy-io/fundezy-web/internal/domaincheck"
)

// RegisterEmailRoutes exposes the institutional-email classification used to
// gate university-challenge actions.
func RegisterEmailRoutes(r fiber.Router) {
	r.Post("/email/check", func(c *fiber.Ctx) error {
		var req struct {
			Email string `json:"email"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		email := strings.TrimSpace(req.Email)
		if email == "" {
			return fiber.NewError(http.StatusBadRequest, "email is required")
		}

		return c.Status(http.StatusOK).JSON(fiber.Map{
			"email":         email,
			"institutional": domaincheck.IsInstitutionalEmail(email),
		})
	})
}
