package routes

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/fundezy-io/fundezy-web/internal/auth"
	"github.com/fundezy-io/fundezy-web/internal/catalog"
	"github.com/fundezy-io/fundezy-web/internal/config"
	"github.com/fundezy-io/fundezy-web/internal/credentials"
	"github.com/fundezy-io/fundezy-web/internal/faq"
	"github.com/fundezy-io/fundezy-web/internal/feedback"
	"github.com/fundezy-io/fundezy-web/internal/matchtrader"
	"github.com/fundezy-io/fundezy-web/internal/middleware"
	"github.com/fundezy-io/fundezy-web/internal/onboarding"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg     config.Config
	DB      *pgxpool.Pool
	Cache   *redis.Client
	Logger  *slog.Logger
	Backend *matchtrader.Client
	Auth    auth.Provider
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	if d.Backend == nil {
		return fmt.Errorf("matchtrader client is required")
	}
	if d.Auth == nil {
		return fmt.Errorf("auth provider is required")
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// Health
	RegisterHealthRoutes(app, d)

	// Services and handlers
	sessions := auth.NewSessions(d.Cfg.SessionSecret, d.Cfg.SessionTTL)

	catalogSvc := catalog.NewService(d.Backend, d.Cache, d.Cfg.TierCacheTTL, d.Logger)

	terminalURL := credentials.TerminalURL(d.Cfg.PlatformURL, d.Cfg.TerminalRedirectURL)

	flows := onboarding.NewManager(d.Backend, func(email string) onboarding.RefreshFunc {
		return func(ctx context.Context) error {
			_, err := d.Backend.GetCredentials(ctx, email)
			return err
		}
	}, d.Logger)

	var feedbackRepo feedback.Repository
	if d.DB != nil {
		feedbackRepo = feedback.NewPostgresRepository(d.DB)
	} else {
		feedbackRepo = feedback.NewMemoryRepository()
	}
	feedbackSvc := feedback.NewService(feedbackRepo)

	faqItems := faq.DefaultItems()

	// API routes
	api := app.Group("/api/v1")
	api.Use(middleware.Audit(d.Logger))
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	// Public routes
	RegisterPricingRoutes(api, catalogSvc)
	RegisterFAQRoutes(api, faqItems)
	RegisterEmailRoutes(api)
	RegisterAuthRoutes(api, d.Auth, sessions)
	rateLimiter := middleware.SubmissionRateLimit(d.Cache, 5)
	RegisterFeedbackRoutes(api, feedbackSvc, rateLimiter)

	// Protected routes
	authGate := middleware.AuthGate(sessions, d.Auth)
	protected := api.Group("/account", authGate)
	if d.Cache != nil {
		protected.Use(middleware.SubmitGuard(d.Cache, d.Cfg.SubmitGuardTTL, d.Logger))
	}
	RegisterAccountRoutes(protected, d, flows, terminalURL)

	// Navigation surface
	RegisterPageRoutes(app, d, sessions, authGate)

	app.Hooks().OnShutdown(func() error {
		flows.Close()
		return nil
	})

	return nil
}
