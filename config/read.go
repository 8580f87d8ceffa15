package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName   = "config"
	configFormat = "yaml"
)

var GlobalConf *Config

func ReadConfig(configPath string) (*Config, error) {
	viper.SetConfigName(configName)
	viper.SetConfigType(configFormat)
	viper.AddConfigPath(configPath)

	setDefaults()

	// Allow env vars to override config values.
	// e.g. INTAKE_DATABASE_HOST overrides database.host
	viper.SetEnvPrefix("INTAKE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// The mail transport was historically configured through bare SMTP_*
	// variables; keep accepting them alongside the prefixed names.
	_ = viper.BindEnv("email.smtp.host", "INTAKE_EMAIL_SMTP_HOST", "SMTP_SERVER")
	_ = viper.BindEnv("email.smtp.port", "INTAKE_EMAIL_SMTP_PORT", "SMTP_PORT")
	_ = viper.BindEnv("email.smtp.username", "INTAKE_EMAIL_SMTP_USERNAME", "SMTP_USERNAME")
	_ = viper.BindEnv("email.smtp.password", "INTAKE_EMAIL_SMTP_PASSWORD", "SMTP_PASSWORD")

	// Read the config file (optional in Docker environments)
	if err := viper.ReadInConfig(); err != nil {
		// If config file not found but we have env vars, continue with defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only fail if it's not a "file not found" error
			if os.Getenv("INTAKE_DATABASE_HOST") == "" {
				return nil, fmt.Errorf("error reading config file: %v", err)
			}
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 5000)
	viper.SetDefault("server.timeout_seconds", 30)
	viper.SetDefault("server.environment", "development")

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.dbname", "contacts")
	viper.SetDefault("database.sslmode", "disable")

	viper.SetDefault("email.enabled", true)
	viper.SetDefault("email.recipient", "naveen@fiskerit.org")
	viper.SetDefault("email.smtp.host", "smtp.gmail.com")
	viper.SetDefault("email.smtp.port", 587)
	viper.SetDefault("email.smtp.timeout_seconds", 30)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("observability.service_name", "intake_backend")
}

func MustReadConfig(path string) *Config {
	config, err := ReadConfig(path)
	if err != nil {
		panic(err)
	}

	GlobalConf = config

	return config
}
