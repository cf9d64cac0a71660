package routes

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/fundezy-io/fundezy-web/internal/auth"
	"github.com/fundezy-io/fundezy-web/internal/middleware"
)

// pageDescriptor tells the client what to render for a navigation path.
type pageDescriptor struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Gated   bool   `json:"gated"`
	Admin   bool   `json:"admin,omitempty"`
	Session bool   `json:"session,omitempty"`
}

// publicPages lists the navigation surface that renders without a session.
var publicPages = []pageDescriptor{
	{Path: "/", Title: "Fundezy"},
	{Path: "/signin", Title: "Sign In"},
	{Path: "/verify-email", Title: "Verify Email"},
	{Path: "/challenge", Title: "Trading Challenge"},
	{Path: "/about", Title: "About Us"},
	{Path: "/faq", Title: "FAQ"},
	{Path: "/pricing", Title: "Pricing"},
	{Path: "/how-it-works", Title: "How It Works"},
	{Path: "/get_started", Title: "Get Started"},
	{Path: "/admin", Title: "Admin"},
	{Path: "/tnc", Title: "Terms and Conditions"},
	{Path: "/disclaimers_and_legal", Title: "Disclaimers and Legal"},
	{Path: "/use_of_website", Title: "Use of Website"},
	{Path: "/pps", Title: "Personal Privacy Statement"},
}

// RegisterPageRoutes exposes the navigation surface. Public pages report
// whether a valid session is present; gated pages sit behind the auth gate,
// and the investor-relations page additionally behind the admin gate.
func RegisterPageRoutes(app *fiber.App, d Deps, sessions *auth.Sessions, authGate fiber.Handler) {
	for _, page := range publicPages {
		page := page
		app.Get(page.Path, func(c *fiber.Ctx) error {
			desc := page
			if token := c.Cookies(middleware.SessionCookie); token != "" {
				if _, err := sessions.Verify(token); err == nil {
					desc.Session = true
				}
			}
			return c.Status(http.StatusOK).JSON(desc)
		})
	}

	gated := func(path, title string) {
		app.Get(path, authGate, func(c *fiber.Ctx) error {
			email, _ := c.Locals(middleware.LocalUserEmail).(string)
			return c.Status(http.StatusOK).JSON(fiber.Map{
				"path":    c.Path(),
				"title":   title,
				"gated":   true,
				"session": true,
				"email":   email,
			})
		})
	}
	gated("/dashboard", "Dashboard")
	gated("/checkout/:tier", "Checkout")

	adminGate := middleware.AdminGate(d.Backend, d.Logger)
	app.Get("/investor-relations", authGate, adminGate, func(c *fiber.Ctx) error {
		email, _ := c.Locals(middleware.LocalUserEmail).(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"path":    "/investor-relations",
			"title":   "Investor Relations",
			"gated":   true,
			"admin":   true,
			"session": true,
			"email":   email,
		})
	})
}
