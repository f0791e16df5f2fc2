// Package config provides configuration management for the SportsLine
// analyzer service.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("environment", validateEnvironment)
	v.RegisterValidation("loglevel", validateLogLevel)
	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	return NewValidator().Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	if err := cv.validator.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}
	return validateCrossField(cfg)
}

func validateEnvironment(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
		return true
	default:
		return false
	}
}

// validateCrossField enforces constraints spanning multiple fields.
func validateCrossField(cfg *Config) error {
	if cfg.Metrics.Enabled && cfg.Metrics.Port == cfg.Server.Port {
		return fmt.Errorf("metrics port %d collides with server port", cfg.Metrics.Port)
	}

	// Weights sum to at most 100: the composite score is documented as a
	// 0-100-ish scale with headroom reserved for future signals.
	sum := cfg.Analysis.EdgeWeight + cfg.Analysis.ExpertsWeight +
		cfg.Analysis.SharpMoneyWeight + cfg.Analysis.InjuryWeight
	if sum > 100 {
		return fmt.Errorf("analysis weights sum to %.1f, must not exceed 100", sum)
	}
	return nil
}

func formatValidationErrors(errs validator.ValidationErrors) error {
	msg := "configuration validation failed:"
	for _, e := range errs {
		msg += fmt.Sprintf("\n  - %s: failed rule %q", e.Namespace(), e.Tag())
	}
	return fmt.Errorf("%s", msg)
}
