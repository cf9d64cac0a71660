package routes

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/fundezy-io/fundezy-web/internal/feedback"
)

// RegisterFeedbackRoutes wires the feedback and waiting-list submission
// endpoint. It stays public: users hitting the exhausted demo-account pool
// may not have finished signing in, so only the rate limit guards it.
func RegisterFeedbackRoutes(r fiber.Router, svc *feedback.Service, rateLimit fiber.Handler) {
	r.Post("/feedback", rateLimit, func(c *fiber.Ctx) error {
		var req struct {
			Email   string `json:"email"`
			Message string `json:"message"`
			Source  string `json:"source"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}

		entry, err := svc.Submit(c.UserContext(), feedback.SubmitInput{
			Email:   req.Email,
			Message: req.Message,
			Source:  req.Source,
		})
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}

		return c.Status(http.StatusCreated).JSON(fiber.Map{
			"id":        entry.ID,
			"source":    entry.Source,
			"createdAt": entry.CreatedAt,
		})
	})
}
