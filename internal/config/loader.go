// Package config provides configuration management for the SportsLine
// analyzer service.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load reads and parses the configuration from file and environment
// variables. Environment variable placeholders (${VAR_NAME}) in the YAML
// file are expanded before parsing.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath == "" {
		configPath = "config/config.yaml"
	}

	v.SetConfigType("yaml")

	// Environment variables win over file values: SPORTSLINE_APP_LOG_LEVEL
	// overrides app.log_level.
	v.SetEnvPrefix("SPORTSLINE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if data, err := os.ReadFile(configPath); err == nil {
		expanded := os.ExpandEnv(string(data))
		if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	// A missing file is fine: defaults plus environment variables apply.

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "sportsline-analyzer")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout_seconds", 5)
	v.SetDefault("server.write_timeout_seconds", 10)
	v.SetDefault("server.idle_timeout_seconds", 60)
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("server.max_body_bytes", 4<<20)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", 9090)

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl_seconds", 60)
	v.SetDefault("cache.max_entries", 1024)

	v.SetDefault("analysis.sigma_floor", 3.0)
	v.SetDefault("analysis.sigma_divisor", 6.0)
	v.SetDefault("analysis.sigma_fallback", 7.5)
	v.SetDefault("analysis.edge_weight", 35.0)
	v.SetDefault("analysis.experts_weight", 15.0)
	v.SetDefault("analysis.sharp_money_weight", 15.0)
	v.SetDefault("analysis.injury_weight", 10.0)
}
