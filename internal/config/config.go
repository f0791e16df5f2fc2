// Package config provides configuration management for the SportsLine
// analyzer service.
package config

// Config represents the complete application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Analysis AnalysisConfig `mapstructure:"analysis" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// ServerConfig represents the HTTP API server configuration
type ServerConfig struct {
	Port                   int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadTimeoutSeconds     int `mapstructure:"read_timeout_seconds" validate:"required,gt=0"`
	WriteTimeoutSeconds    int `mapstructure:"write_timeout_seconds" validate:"required,gt=0"`
	IdleTimeoutSeconds     int `mapstructure:"idle_timeout_seconds" validate:"required,gt=0"`
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"required,gt=0"`
	MaxBodyBytes           int `mapstructure:"max_body_bytes" validate:"required,gt=0"`
}

// MetricsConfig represents Prometheus metrics exposure configuration
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
}

// CacheConfig represents the analysis response cache configuration
type CacheConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	TTLSeconds int  `mapstructure:"ttl_seconds" validate:"omitempty,gt=0"`
	MaxEntries int  `mapstructure:"max_entries" validate:"omitempty,gt=0"`
}

// AnalysisConfig represents the probability model parameters and composite
// score weights. Defaults match the documented formula contract; overriding
// them changes every score the service emits, so treat with care.
type AnalysisConfig struct {
	SigmaFloor    float64 `mapstructure:"sigma_floor" validate:"required,gt=0"`
	SigmaDivisor  float64 `mapstructure:"sigma_divisor" validate:"required,gt=0"`
	SigmaFallback float64 `mapstructure:"sigma_fallback" validate:"required,gt=0"`

	EdgeWeight       float64 `mapstructure:"edge_weight" validate:"gte=0"`
	ExpertsWeight    float64 `mapstructure:"experts_weight" validate:"gte=0"`
	SharpMoneyWeight float64 `mapstructure:"sharp_money_weight" validate:"gte=0"`
	InjuryWeight     float64 `mapstructure:"injury_weight" validate:"gte=0"`
}
