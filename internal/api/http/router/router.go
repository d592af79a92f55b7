package router

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/Alijeyrad/enquiry_backend/config"
	"github.com/Alijeyrad/enquiry_backend/internal/api/http/handler"
	"github.com/Alijeyrad/enquiry_backend/internal/repo"
	"github.com/Alijeyrad/enquiry_backend/internal/service/enquiry"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

const readinessTimeout = 2 * time.Second

type Params struct {
	fx.In

	Cfg        *config.Config
	Store      repo.EnquiryStore
	EnquirySvc enquiry.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

// Register mounts every route. NotFound goes last so it only sees
// requests no route matched.
func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	enquiryH := handler.NewEnquiryHandler(r.p.EnquirySvc)

	api := app.Group("/api/v1")
	r.registerEnquiryRoutes(api, enquiryH)

	app.Use(handler.NotFound)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool {
			ctx, cancel := context.WithTimeout(c.Context(), readinessTimeout)
			defer cancel()
			return r.p.Store.Ping(ctx) == nil
		},
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
