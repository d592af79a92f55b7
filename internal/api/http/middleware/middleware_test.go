package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/enquiry_backend/config"
	"github.com/Alijeyrad/enquiry_backend/pkg/reqctx"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c fiber.Ctx) error {
		local, _ := RequestIDFromFiber(c)
		return c.SendString(local + "|" + reqctx.RequestIDFromContext(c.Context()))
	})

	tests := []struct {
		name     string
		incoming string
	}{
		{"generated", ""},
		{"preserved", "client-supplied-id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(HeaderRequestID, tt.incoming)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			rid := resp.Header.Get(HeaderRequestID)
			if rid == "" {
				t.Fatal("missing X-Request-Id response header")
			}
			if tt.incoming != "" && rid != tt.incoming {
				t.Errorf("X-Request-Id = %q, want %q", rid, tt.incoming)
			}

			body, _ := io.ReadAll(resp.Body)
			if got, want := string(body), rid+"|"+rid; got != want {
				t.Errorf("body = %q, want %q", got, want)
			}
		})
	}
}

func TestLimiterInMemory(t *testing.T) {
	app := fiber.New()
	app.Use(NewLimiter(config.RateLimitConfig{RequestsPerWindow: 2, WindowSeconds: 60}, nil))
	app.Post("/api/v1/enquiries", func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	var last int
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/enquiries", nil))
		if err != nil {
			t.Fatal(err)
		}
		last = resp.StatusCode
		if i < 2 && last != fiber.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, last)
		}
	}
	if last != fiber.StatusTooManyRequests {
		t.Errorf("third request status = %d, want 429", last)
	}
}
