package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/Gawrycy/fin-health-pulse/config"
	"github.com/Gawrycy/fin-health-pulse/models"
)

// Helper to create an app with a pre-local middleware that sets userRole
func makeAppWithRole(role string, check fiber.Handler) *fiber.App {
	app := fiber.New()

	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userRole", role)
		return c.Next()
	})

	app.Use(check)

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.Status(200).SendString("ok")
	})

	return app
}

func TestCheckRole_AllowsMatchingRole(t *testing.T) {
	app := makeAppWithRole("admin", CheckRole("admin"))
	req := httptest.NewRequest("GET", "/test", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 for admin role, got %d", resp.StatusCode)
	}
}

func TestCheckRole_AllowsAnyListedRole(t *testing.T) {
	app := makeAppWithRole("client", CheckRole("admin", "client"))
	req := httptest.NewRequest("GET", "/test", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 for client role, got %d", resp.StatusCode)
	}
}

func TestCheckRole_DeniesOtherRole(t *testing.T) {
	app := makeAppWithRole("client", CheckRole("admin"))
	req := httptest.NewRequest("GET", "/test", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 403 {
		t.Fatalf("expected 403 for non-admin role, got %d", resp.StatusCode)
	}
}

func makeAuthApp() *fiber.App {
	app := fiber.New()
	app.Use(Authenticate)
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("userID").(string))
	})
	return app
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	app := makeAuthApp()
	req := httptest.NewRequest("GET", "/test", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("expected 401 without header, got %d", resp.StatusCode)
	}
}

func TestAuthenticate_MalformedToken(t *testing.T) {
	app := makeAuthApp()
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("expected 401 for malformed token, got %d", resp.StatusCode)
	}
}

func TestAuthenticate_ValidToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	claims := models.JwtClaims{
		UserID: "user-1",
		Role:   "client",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	app := makeAuthApp()
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 for valid token, got %d", resp.StatusCode)
	}
}
