package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Alijeyrad/enquiry_backend/config"
)

// Config holds MongoDB connection settings
type Config struct {
	URI                   string
	Database              string
	ConnectTimeoutSeconds int
}

// ConnectTimeout returns the connect timeout as a duration
func (c Config) ConnectTimeout() time.Duration {
	if c.ConnectTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.ConnectTimeoutSeconds) * time.Second
}

// FromCentralConfig converts central config.DatabaseConfig to package Config
func FromCentralConfig(c config.DatabaseConfig) Config {
	return Config{
		URI:                   c.URI,
		Database:              c.Name,
		ConnectTimeoutSeconds: c.ConnectTimeoutSeconds,
	}
}

// NewFromCentral connects to MongoDB and returns the configured database.
func NewFromCentral(cfg config.DatabaseConfig) (*mongo.Client, *mongo.Database, error) {
	return New(FromCentralConfig(cfg))
}

func New(cfg Config) (*mongo.Client, *mongo.Database, error) {
	if cfg.URI == "" {
		return nil, nil, fmt.Errorf("mongodb uri is empty")
	}
	if cfg.Database == "" {
		return nil, nil, fmt.Errorf("mongodb database name is empty")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout())
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongodb ping failed: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
