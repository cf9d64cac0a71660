package routes

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/fundezy-io/fundezy-web/internal/catalog"
)

// RegisterPricingRoutes wires the pricing-page tier endpoint.
func RegisterPricingRoutes(r fiber.Router, tiers *catalog.Service) {
	r.Get("/pricing/tiers", func(c *fiber.Ctx) error {
		list, err := tiers.ListTiers(c.UserContext())
		if err != nil {
			// The client shows the message with an explicit retry action.
			return fiber.NewError(http.StatusBadGateway, err.Error())
		}
		if list == nil {
			list = []catalog.Tier{}
		}
		return c.Status(http.StatusOK).JSON(fiber.Map{"tiers": list})
	})
}
