package routes

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/fundezy-io/fundezy-web/internal/credentials"
	"github.com/fundezy-io/fundezy-web/internal/matchtrader"
	"github.com/fundezy-io/fundezy-web/internal/middleware"
	"github.com/fundezy-io/fundezy-web/internal/onboarding"
)

// noopClipboard satisfies the credential view for server-side projections;
// actual clipboard writes happen in the browser.
type noopClipboard struct{}

func (noopClipboard) WriteText(string) error { return nil }

// RegisterAccountRoutes wires the authenticated trading-account surface.
func RegisterAccountRoutes(r fiber.Router, d Deps, flows *onboarding.Manager, terminalURL string) {
	// Account lookup backing the "Get Started" decision: an existing account
	// goes to the platform, anything else to the dashboard. A lookup failure
	// is treated as "no account" so onboarding stays reachable.
	r.Get("/", func(c *fiber.Ctx) error {
		email, _ := c.Locals(middleware.LocalUserEmail).(string)

		account, err := d.Backend.GetAccountByEmail(c.UserContext(), email)
		if err != nil {
			if !errors.Is(err, matchtrader.ErrAccountNotFound) {
				d.Logger.Warn("account lookup failed, assuming no account",
					slog.String("email", email), slog.Any("error", err))
			}
			return c.Status(http.StatusOK).JSON(fiber.Map{
				"exists":   false,
				"redirect": "/dashboard",
			})
		}

		return c.Status(http.StatusOK).JSON(fiber.Map{
			"exists":    true,
			"accountId": account.AccountID,
			"redirect":  d.Cfg.PlatformURL,
		})
	})

	r.Get("/credentials", func(c *fiber.Ctx) error {
		email, _ := c.Locals(middleware.LocalUserEmail).(string)

		view := credentials.NewView(noopClipboard{}, terminalURL)
		defer view.Close()

		creds, err := d.Backend.GetCredentials(c.UserContext(), email)
		if err != nil {
			view.SetError(err.Error())
			return c.Status(http.StatusBadGateway).JSON(view.Snapshot())
		}

		view.SetReady(credentials.Credentials{
			Server:    creds.Server,
			Login:     creds.Login,
			Password:  creds.Password,
			AccountID: creds.AccountID,
			Status:    creds.Status,
		})
		return c.Status(http.StatusOK).JSON(view.Snapshot())
	})

	r.Post("/demo", func(c *fiber.Ctx) error {
		email, _ := c.Locals(middleware.LocalUserEmail).(string)

		var req struct {
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}

		flow := flows.FlowFor(email)
		err := flow.CreateDemoAccount(c.UserContext(), onboarding.Input{
			Email:     email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		})
		snap := flow.Snapshot()

		switch {
		case err == nil:
			return c.Status(http.StatusCreated).JSON(snap)
		case errors.Is(err, onboarding.ErrMissingName):
			return fiber.NewError(http.StatusBadRequest, err.Error())
		case errors.Is(err, onboarding.ErrInProgress):
			return fiber.NewError(http.StatusConflict, err.Error())
		default:
			return c.Status(http.StatusBadGateway).JSON(fiber.Map{
				"error":             snap.Error,
				"feedbackRequested": snap.State == onboarding.StateFeedback,
			})
		}
	})
}
