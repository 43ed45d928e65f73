package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newOrderTestApp() *fiber.App {
	// nil DB: these cases fail on id parsing before any query runs.
	ctrl := NewOrderController(nil)

	app := fiber.New()
	app.Get("/orders/:id", ctrl.GetMyOrder)
	app.Patch("/orders/:id/cancel", ctrl.CancelOrder)
	return app
}

func TestCancelOrder_InvalidID(t *testing.T) {
	app := newOrderTestApp()

	req := httptest.NewRequest("PATCH", "/orders/not-a-uuid/cancel", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}

	body, _ := io.ReadAll(resp.Body)
	var out struct {
		Success   bool   `json:"success"`
		ErrorCode string `json:"error_code"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal %q: %v", body, err)
	}
	if out.Success {
		t.Error("success = true, want false")
	}
	if out.ErrorCode != "BAD_REQUEST" {
		t.Errorf("error_code = %q, want BAD_REQUEST", out.ErrorCode)
	}
}

func TestGetMyOrder_Anonymous(t *testing.T) {
	app := newOrderTestApp()

	req := httptest.NewRequest("GET", "/orders/zzz", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}

func TestGetMyOrder_InvalidID(t *testing.T) {
	ctrl := NewOrderController(nil)

	app := fiber.New()
	app.Get("/orders/:id", func(c *fiber.Ctx) error {
		c.Locals("user_id", "7b6a3d2e-9c41-4f0b-8d5a-1e2f3a4b5c6d")
		return ctrl.GetMyOrder(c)
	})

	req := httptest.NewRequest("GET", "/orders/zzz", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}
}
