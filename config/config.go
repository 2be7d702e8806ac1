package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the server
type Config struct {
	Port       string
	Mode       string
	DB         DBConfig
	Scheduling SchedulingConfig
}

// DBConfig holds database configuration; credentials come from the
// environment (.env), not from the config file
type DBConfig struct {
	Host     string
	Port     int
	Name     string
	TestName string
}

// SchedulingConfig holds flight scheduling policies
type SchedulingConfig struct {
	// RejectPastDeparture rejects new flights whose departure instant is
	// already in the past. Policy applies at creation only.
	RejectPastDeparture bool
}

// Load loads configuration from config file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("port", "8000")
	v.SetDefault("mode", "real")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "airline_ops_db")
	v.SetDefault("db.test_name", "airline_ops_db_test")
	v.SetDefault("scheduling.reject_past_departure", true)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/airline-ops")
	v.AddConfigPath(".")

	if configPath := os.Getenv("AIRLINE_OPS_CONFIG_PATH"); configPath != "" {
		v.SetConfigFile(configPath)
	}

	// Config file not found is OK, defaults + env vars are enough
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("AIRLINE_OPS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Port: v.GetString("port"),
		Mode: v.GetString("mode"),
		DB: DBConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			Name:     v.GetString("db.name"),
			TestName: v.GetString("db.test_name"),
		},
		Scheduling: SchedulingConfig{
			RejectPastDeparture: v.GetBool("scheduling.reject_past_departure"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// validate validates the configuration values
func validate(cfg *Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("port is required")
	}

	if cfg.Mode != "real" && cfg.Mode != "test" {
		return fmt.Errorf("invalid mode: %s (must be real or test)", cfg.Mode)
	}

	if cfg.DB.Host == "" {
		return fmt.Errorf("db.host is required")
	}
	if cfg.DB.Port <= 0 {
		return fmt.Errorf("db.port must be greater than 0")
	}
	if cfg.DB.Name == "" || cfg.DB.TestName == "" {
		return fmt.Errorf("db.name and db.test_name are required")
	}

	return nil
}
