package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/Alijeyrad/enquiry_backend/pkg/constants"
)

var GlobalConf *Config

// legacyEnv maps config keys to the plain environment variables the form
// deployment has always used.
var legacyEnv = map[string]string{
	"email.smtp.username": "SMTP_USER",
	"email.admin_address": "ADMIN_EMAIL",
	"server.environment":  "NODE_ENV",
}

func ReadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(constants.ConfigName)
	v.SetConfigType(constants.ConfigFormat)
	v.AddConfigPath(configPath)

	// e.g. ENQUIRY_DATABASE_URI overrides database.uri
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range legacyEnv {
		prefixed := constants.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	setDefaults(v)

	// The config file is optional in containers that are configured by env only.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func MustReadConfig(path string) *Config {
	config, err := ReadConfig(path)
	if err != nil {
		panic(err)
	}

	GlobalConf = config

	return config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.timeout_seconds", 30)
	v.SetDefault("server.environment", constants.EnvDevelopment)

	v.SetDefault("database.driver", constants.DriverMongo)
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "enquiries")
	v.SetDefault("database.connect_timeout_seconds", 10)
	v.SetDefault("database.postgres.host", "localhost")
	v.SetDefault("database.postgres.port", 5432)
	v.SetDefault("database.postgres.sslmode", "disable")
	v.SetDefault("database.postgres.user", "")
	v.SetDefault("database.postgres.password", "")
	v.SetDefault("database.postgres.dbname", "enquiries")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("nats.url", "")

	v.SetDefault("email.enabled", true)
	v.SetDefault("email.from_name", "Website Enquiry")
	v.SetDefault("email.smtp.port", 587)
	v.SetDefault("email.smtp.timeout_seconds", 30)
	v.SetDefault("email.smtp.host", "")
	v.SetDefault("email.smtp.password", "")
	v.SetDefault("email.smtp.use_tls", false)

	v.SetDefault("sms.enabled", false)
	v.SetDefault("sms.region", "IR")
	v.SetDefault("sms.admin_phone", "")
	v.SetDefault("sms.smsir.api_key", "")
	v.SetDefault("sms.smsir.secret_key", "")
	v.SetDefault("sms.smsir.template_id", "")

	v.SetDefault("rate_limit.requests_per_window", 20)
	v.SetDefault("rate_limit.window_seconds", 30)

	v.SetDefault("observability.service_name", "enquiry_backend")
	v.SetDefault("observability.metrics.path", "/metrics")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.output.stdout", true)
}
