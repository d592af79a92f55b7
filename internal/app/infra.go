package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Alijeyrad/enquiry_backend/config"
	"github.com/Alijeyrad/enquiry_backend/internal/repo"
	"github.com/Alijeyrad/enquiry_backend/pkg/constants"
	"github.com/Alijeyrad/enquiry_backend/pkg/database"
	"github.com/Alijeyrad/enquiry_backend/pkg/email"
	"github.com/Alijeyrad/enquiry_backend/pkg/events"
	"github.com/Alijeyrad/enquiry_backend/pkg/logs"
	"github.com/Alijeyrad/enquiry_backend/pkg/mongodb"
	"github.com/Alijeyrad/enquiry_backend/pkg/observability"
	redispkg "github.com/Alijeyrad/enquiry_backend/pkg/redis"
	"github.com/Alijeyrad/enquiry_backend/pkg/sms"
)

// InfraModule provides all infrastructure dependencies. Redis and NATS are
// optional and provided as nil when not configured.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideLogger),
	fx.Provide(ProvideEnquiryStore),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideEmailClient),
	fx.Provide(ProvideSMSClient),
	fx.Provide(ProvideOTel),
	fx.Provide(ProvideNatsClient),
)

func ProvideLogger(cfg *config.Config) *slog.Logger {
	log := logs.New(cfg)
	slog.SetDefault(log)
	return log
}

func ProvideEnquiryStore(lc fx.Lifecycle, cfg *config.Config) (repo.EnquiryStore, error) {
	switch cfg.Database.Driver {
	case constants.DriverPostgres:
		db, err := database.NewFromCentral(cfg.Database.Postgres)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				slog.Debug("closing postgres connection")
				return db.Close()
			},
		})
		return repo.NewPostgresStore(db), nil

	case constants.DriverMongo:
		client, db, err := mongodb.NewFromCentral(cfg.Database)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				slog.Debug("disconnecting mongodb client")
				return client.Disconnect(ctx)
			},
		})
		return repo.NewMongoStore(db), nil
	}

	return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
}

func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	rdb, err := redispkg.NewRedisFromCentral(context.Background(), cfg.Redis)
	if errors.Is(err, redispkg.ErrNoAddr) {
		slog.Info("redis not configured, rate limiter counters stay in memory")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideEmailClient(cfg *config.Config) (*email.Client, error) {
	return email.NewFromCentral(cfg.Email)
}

func ProvideSMSClient(cfg *config.Config) (*sms.Client, error) {
	return sms.NewFromConfig(cfg.SMS)
}

func ProvideNatsClient(lc fx.Lifecycle, cfg *config.Config) (*nats.Conn, error) {
	nc, err := events.Connect(cfg.Nats.URL)
	if err != nil || nc == nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("draining NATS connection")
			return nc.Drain()
		},
	})
	return nc, nil
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.FromCentralConfig(cfg))
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}
