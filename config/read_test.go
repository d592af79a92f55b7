package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := ReadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Driver != "mongodb" {
		t.Errorf("Database.Driver = %q, want mongodb", cfg.Database.Driver)
	}
	if cfg.Email.FromName != "Website Enquiry" {
		t.Errorf("Email.FromName = %q, want Website Enquiry", cfg.Email.FromName)
	}
	if cfg.Server.IsProduction() {
		t.Error("expected development environment by default")
	}
}

func TestReadConfig_LegacyEnv(t *testing.T) {
	t.Setenv("SMTP_USER", "forms@example.com")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("NODE_ENV", "production")

	cfg, err := ReadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Email.SMTP.Username != "forms@example.com" {
		t.Errorf("Email.SMTP.Username = %q", cfg.Email.SMTP.Username)
	}
	if cfg.Email.AdminAddress != "admin@example.com" {
		t.Errorf("Email.AdminAddress = %q", cfg.Email.AdminAddress)
	}
	if !cfg.Server.IsProduction() {
		t.Errorf("Server.Environment = %q, want production", cfg.Server.Environment)
	}
}

func TestReadConfig_PrefixedEnvWinsOverLegacy(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "legacy@example.com")
	t.Setenv("ENQUIRY_EMAIL_ADMIN_ADDRESS", "new@example.com")

	cfg, err := ReadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}
	if cfg.Email.AdminAddress != "new@example.com" {
		t.Errorf("Email.AdminAddress = %q, want new@example.com", cfg.Email.AdminAddress)
	}
}

func TestReadConfig_File(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
server:
  port: 9090
database:
  driver: postgres
  postgres:
    host: db
    dbname: forms
`)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := ReadConfig(dir)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" || cfg.Database.Postgres.Host != "db" {
		t.Errorf("unexpected database config: %+v", cfg.Database)
	}
	if cfg.Database.Postgres.Port != 5432 {
		t.Errorf("Postgres.Port = %d, want default 5432", cfg.Database.Postgres.Port)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "bad port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "sqlite" }, wantErr: true},
		{name: "mongo without uri", mutate: func(c *Config) { c.Database.URI = "" }, wantErr: true},
		{name: "postgres without uri", mutate: func(c *Config) {
			c.Database.Driver = "postgres"
			c.Database.URI = ""
		}},
		{name: "loki without endpoint", mutate: func(c *Config) { c.Logging.Output.Loki.Enabled = true }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Server:   ServerConfig{Port: 8080},
				Database: DatabaseConfig{Driver: "mongodb", URI: "mongodb://localhost:27017"},
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
