package http

import (
	"encoding/json"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/enquiry_backend/config"
	"github.com/Alijeyrad/enquiry_backend/internal/api/http/middleware"
)

func testConfig(env string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, TimeoutSeconds: 5, Environment: env},
		RateLimit: config.RateLimitConfig{
			RequestsPerWindow: 100,
			WindowSeconds:     30,
		},
	}
}

func TestNewAppPanicRecovery(t *testing.T) {
	tests := []struct {
		env       string
		wantStack bool
	}{
		{"development", true},
		{"production", false},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			log := slog.New(slog.NewTextHandler(io.Discard, nil))
			app := newApp(testConfig(tt.env), log, nil, false)
			app.Get("/panic", func(c fiber.Ctx) error {
				panic("boom")
			})

			resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/panic", nil))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != fiber.StatusInternalServerError {
				t.Errorf("status = %d, want 500", resp.StatusCode)
			}
			if resp.Header.Get(middleware.HeaderRequestID) == "" {
				t.Error("missing X-Request-Id header")
			}

			var body struct {
				Success bool    `json:"success"`
				Stack   *string `json:"stack"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatal(err)
			}
			if body.Success {
				t.Error("success should be false")
			}
			if got := body.Stack != nil; got != tt.wantStack {
				t.Errorf("stack present = %v, want %v", got, tt.wantStack)
			}
		})
	}
}

func TestNewAppProductionHeaders(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := newApp(testConfig("production"), log, nil, false)
	app.Get("/ok", func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/ok", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.Header.Get("X-Content-Type-Options") != "nosniff" {
		t.Error("helmet headers missing in production")
	}
}
