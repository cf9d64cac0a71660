package middleware

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fundezy-io/fundezy-web/internal/auth"
	"github.com/fundezy-io/fundezy-web/internal/logging"
)

func gatedApp(t *testing.T, sessions *auth.Sessions, provider auth.Provider) *fiber.App {
	t.Helper()
	app := fiber.New()
	protected := app.Group("/dashboard", AuthGate(sessions, provider))
	protected.Get("/", func(c *fiber.Ctx) error {
		email, _ := c.Locals(LocalUserEmail).(string)
		return c.JSON(fiber.Map{"email": email})
	})
	return app
}

func TestAuthGateRedirectsWithoutSession(t *testing.T) {
	provider := auth.NewDevProvider()
	sessions := auth.NewSessions("secret", time.Hour)
	app := gatedApp(t, sessions, provider)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/dashboard/", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/signin" {
		t.Fatalf("expected /signin redirect, got %q", loc)
	}
}

func TestAuthGateAdmitsValidSession(t *testing.T) {
	provider := auth.NewDevProvider()
	user, err := provider.Register("jane@example.com", "hunter22", "Jane", "Doe")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	provider.MarkVerified(user.Email)
	user, _ = provider.UserByEmail(context.Background(), user.Email)

	sessions := auth.NewSessions("secret", time.Hour)
	token, err := sessions.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	app := gatedApp(t, sessions, provider)
	req := httptest.NewRequest(fiber.MethodGet, "/dashboard/", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestAuthGateRedirectsUnverifiedEmail(t *testing.T) {
	provider := auth.NewDevProvider()
	user, err := provider.Register("jane@example.com", "hunter22", "Jane", "Doe")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	sessions := auth.NewSessions("secret", time.Hour)
	token, err := sessions.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	app := gatedApp(t, sessions, provider)
	req := httptest.NewRequest(fiber.MethodGet, "/dashboard/", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	if loc := resp.Header.Get("Location"); loc != "/verify-email" {
		t.Fatalf("expected /verify-email redirect, got %q", loc)
	}
}

func TestAuthGateRejectsSessionAfterSignOut(t *testing.T) {
	provider := auth.NewDevProvider()
	user, err := provider.Register("jane@example.com", "hunter22", "Jane", "Doe")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	provider.MarkVerified(user.Email)
	user, _ = provider.UserByEmail(context.Background(), user.Email)

	sessions := auth.NewSessions("secret", time.Hour)
	token, err := sessions.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if err := provider.SignOut(context.Background(), user.ID); err != nil {
		t.Fatalf("sign out: %v", err)
	}

	app := gatedApp(t, sessions, provider)
	req := httptest.NewRequest(fiber.MethodGet, "/dashboard/", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	if loc := resp.Header.Get("Location"); loc != "/signin" {
		t.Fatalf("expected /signin redirect, got %q", loc)
	}
}

type failingChecker struct{}

func (failingChecker) CheckAdmin(context.Context, string) (bool, error) {
	return false, errors.New("admin service down")
}

type allowChecker struct{ admin string }

func (a allowChecker) CheckAdmin(_ context.Context, email string) (bool, error) {
	return email == a.admin, nil
}

func adminApp(checker AdminChecker, email string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if email != "" {
			c.Locals(LocalUserEmail, email)
		}
		return c.Next()
	})
	app.Get("/investor-relations", AdminGate(checker, logging.Discard()), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAdminGateSwallowsCheckErrors(t *testing.T) {
	app := adminApp(failingChecker{}, "jane@example.com")

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/investor-relations", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusFound || resp.Header.Get("Location") != "/" {
		t.Fatalf("expected silent redirect home, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
}

func TestAdminGateAdmitsAdmin(t *testing.T) {
	app := adminApp(allowChecker{admin: "ops@fundezy.io"}, "ops@fundezy.io")

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/investor-relations", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestAdminGateRejectsNonAdmin(t *testing.T) {
	app := adminApp(allowChecker{admin: "ops@fundezy.io"}, "jane@example.com")

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/investor-relations", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}
}
