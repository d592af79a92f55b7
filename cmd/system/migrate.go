package system

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alijeyrad/enquiry_backend/config"
	"github.com/Alijeyrad/enquiry_backend/internal/repo"
	"github.com/Alijeyrad/enquiry_backend/pkg/constants"
	"github.com/Alijeyrad/enquiry_backend/pkg/database"
	"github.com/Alijeyrad/enquiry_backend/pkg/mongodb"
)

func NewMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the enquiry table or collection indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig(cmd)
			if err != nil {
				return err
			}

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			fmt.Printf("Running migrations for the %s store.\n", cfg.Database.Driver)
			if err := migrate(ctx, cfg); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			fmt.Println("Migrations executed successfully.")
			return nil
		},
	}

	return cmd
}

func migrate(ctx context.Context, cfg *config.Config) error {
	switch cfg.Database.Driver {
	case constants.DriverPostgres:
		db, err := database.NewFromCentral(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		defer db.Close()
		return repo.NewPostgresStore(db).Migrate(ctx)

	case constants.DriverMongo:
		client, db, err := mongodb.NewFromCentral(cfg.Database)
		if err != nil {
			return err
		}
		defer client.Disconnect(context.Background())
		return repo.NewMongoStore(db).EnsureIndexes(ctx)
	}

	return fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
}
