package config

import (
	"os"
	"testing"
)

func TestLoadValidConfig(t *testing.T) {
	cfg, err := Load("testdata/valid_config.yaml")
	if err != nil {
		t.Fatalf("expected no error loading config, got %v", err)
	}
	if cfg == nil {
		t.Fatal("expected non-nil config")
	}

	if cfg.App.Name != "sportsline-analyzer" {
		t.Errorf("expected app name 'sportsline-analyzer', got '%s'", cfg.App.Name)
	}
	if cfg.App.LogLevel != "debug" {
		t.Errorf("expected log level 'debug', got '%s'", cfg.App.LogLevel)
	}
	if cfg.Server.Port != 8181 {
		t.Errorf("expected server port 8181, got %d", cfg.Server.Port)
	}
	if cfg.Metrics.Enabled {
		t.Error("expected metrics disabled")
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("testdata/nonexistent_config.yaml")
	if err != nil {
		t.Fatalf("missing file should fall back to defaults, got %v", err)
	}

	if cfg.App.Environment != "development" {
		t.Errorf("expected default environment, got '%s'", cfg.App.Environment)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Analysis.EdgeWeight != 35.0 {
		t.Errorf("expected default edge weight 35, got %f", cfg.Analysis.EdgeWeight)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadExpandsEnvironmentVariables(t *testing.T) {
	os.Setenv("SPORTSLINE_TEST_APP_NAME", "expanded-name")
	defer os.Unsetenv("SPORTSLINE_TEST_APP_NAME")

	cfg, err := Load("testdata/expansion_config.yaml")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.App.Name != "expanded-name" {
		t.Errorf("expected expanded app name, got '%s'", cfg.App.Name)
	}
}

func TestValidateRejectsBadEnvironment(t *testing.T) {
	cfg, err := Load("testdata/valid_config.yaml")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	cfg.App.Environment = "invalid"

	if err := Validate(cfg); err == nil {
		t.Error("expected validation error for bad environment")
	}
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg, err := Load("testdata/valid_config.yaml")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	cfg.App.LogLevel = "verbose"

	if err := Validate(cfg); err == nil {
		t.Error("expected validation error for bad log level")
	}
}

func TestValidateRejectsOverweightAnalysis(t *testing.T) {
	cfg, err := Load("testdata/valid_config.yaml")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	cfg.Analysis.EdgeWeight = 90.0

	if err := Validate(cfg); err == nil {
		t.Error("expected validation error when weights exceed 100")
	}
}

func TestValidateRejectsPortCollision(t *testing.T) {
	cfg, err := Load("testdata/valid_config.yaml")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	cfg.Metrics.Enabled = true
	cfg.Metrics.Port = cfg.Server.Port

	if err := Validate(cfg); err == nil {
		t.Error("expected validation error for port collision")
	}
}
