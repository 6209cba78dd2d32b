package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"stockroom/internal/http/handlers"
)

func TestWelcomeAndHealth(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := call(t, app, http.MethodGet, "/", nil)
	if status != http.StatusOK {
		t.Fatalf("welcome: want 200, got %d", status)
	}
	if !strings.Contains(string(body), "Bem-vindo à API!") {
		t.Fatalf("unexpected welcome body %q", body)
	}

	status, body = call(t, app, http.MethodGet, "/healthz", nil)
	if status != http.StatusOK || !strings.Contains(string(body), `"ok":true`) {
		t.Fatalf("healthz: %d %s", status, body)
	}
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := call(t, app, http.MethodGet, "/nope", nil)
	if status != http.StatusNotFound {
		t.Fatalf("want 404, got %d", status)
	}
	if !strings.Contains(string(body), `"error"`) {
		t.Fatalf("want JSON error body, got %s", body)
	}
}

func TestMalformedJSONIsBadRequest(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
}

// Internal failures get a generic 500 and are logged, without leaking detail.
func TestErrorHandlerHidesInternals(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Use(requestid.New())
	app.Get("/err", func(c *fiber.Ctx) error {
		return errors.New("db timeout: secret trace")
	})

	var status int
	var body string
	entries := captureLogs(t, func() {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/err", nil))
		if err != nil {
			t.Fatalf("test request failed: %v", err)
		}
		status = resp.StatusCode
		body = readAll(t, resp)
	})

	if status != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if !strings.Contains(body, "Something went wrong") {
		t.Fatalf("friendly message missing; body=%s", body)
	}
	if strings.Contains(body, "secret") {
		t.Fatalf("internal details leaked; body=%s", body)
	}
	found := false
	for _, e := range entries {
		if e.Action == "server.error" && e.Level == "error" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected server.error log entry, got %+v", entries)
	}
}

func TestMutationsAreAudited(t *testing.T) {
	app, _ := newTestApp(t)

	entries := captureLogs(t, func() {
		call(t, app, http.MethodPost, "/sales", map[string]any{
			"product_id": 1, "quantity": 1, "total_price": 1, "date": "2024-01-01 00:00:00",
		})
		call(t, app, http.MethodPost, "/sales", map[string]any{
			"product_id": 1, "quantity": 1, "total_price": 1, "date": "yesterday",
		})
		upload(t, app, "/products/upload_csv", "p.csv", "name,description,price,category_id\nTV,x,10,1\n")
	})

	want := map[string]string{
		"sale.create":          "audit",
		"sale.create.bad_date": "warn",
		"product.import":       "audit",
	}
	for _, e := range entries {
		if lvl, ok := want[e.Action]; ok && lvl == e.Level {
			delete(want, e.Action)
			if b, _ := e.Fields["batch"].(string); e.Action == "product.import" && b == "" {
				t.Fatalf("import log has no batch id: %+v", e)
			}
		}
	}
	if len(want) != 0 {
		t.Fatalf("missing log entries %v in %+v", want, entries)
	}
}
