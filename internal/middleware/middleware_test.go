package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"hris-backend/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":  float64(1),
		"username": "budi",
		"role":     role,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("rahasia-negara-sangat-kuat"))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	return token
}

func TestAuthRejectsMissingToken(t *testing.T) {
	app := fiber.New()
	app.Get("/", Auth, func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthSetsClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/", Auth, func(c *fiber.Ctx) error {
		if c.Locals("username") != "budi" || c.Locals("role") != model.RoleKaryawan {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, model.RoleKaryawan))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRoleAllowsAndDenies(t *testing.T) {
	app := fiber.New()
	app.Get("/hr", Auth, Role(model.RoleHR), func(c *fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest("GET", "/hr", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, model.RoleHR))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 untuk HR, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest("GET", "/hr", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, model.RoleKaryawan))
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 untuk KARYAWAN, got %d", resp.StatusCode)
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": float64(1),
		"role":    model.RoleHR,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("rahasia-negara-sangat-kuat"))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	app := fiber.New()
	app.Get("/", Auth, func(c *fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 untuk token kadaluwarsa, got %d", resp.StatusCode)
	}
}
