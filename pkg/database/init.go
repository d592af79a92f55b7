package database

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/Alijeyrad/enquiry_backend/config"
)

// InitializeDatabase creates the enquiry database if it doesn't exist.
// It connects to the default 'postgres' database to do so.
func InitializeDatabase(cfg config.PostgresConfig) error {
	if cfg.DBName == "" {
		return fmt.Errorf("no database name provided")
	}

	admin := FromCentralConfig(cfg)
	admin.DBName = "postgres"

	conn, err := Open(admin)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres database: %w", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`
	if err := conn.QueryRowContext(ctx, query, cfg.DBName).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := conn.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(cfg.DBName)); err != nil {
		return fmt.Errorf("failed to create database %q: %w", cfg.DBName, err)
	}

	return nil
}
