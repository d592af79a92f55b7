package system

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Alijeyrad/enquiry_backend/config"
	"github.com/Alijeyrad/enquiry_backend/pkg/constants"
	"github.com/Alijeyrad/enquiry_backend/pkg/database"
)

func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the postgres database when the postgres driver is selected",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig(cmd)
			if err != nil {
				return err
			}

			if cfg.Database.Driver != constants.DriverPostgres {
				fmt.Printf("Nothing to initialize for the %s driver.\n", cfg.Database.Driver)
				return nil
			}

			fmt.Println("Initializing database...")
			if err := database.InitializeDatabase(cfg.Database.Postgres); err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			fmt.Println("Database initialized successfully.")
			return nil
		},
	}

	return cmd
}

func readConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return cfg, nil
}
