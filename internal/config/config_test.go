package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_DefaultValues(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Host != "localhost" {
		t.Errorf("Expected HOST default 'localhost', got '%s'", cfg.Host)
	}

	if cfg.Port != "8092" {
		t.Errorf("Expected PORT default '8092', got '%s'", cfg.Port)
	}

	if cfg.ReadHeaderTimeout != 20*time.Second {
		t.Errorf("Expected READ_HEADER_TIMEOUT default 20s, got %v", cfg.ReadHeaderTimeout)
	}

	if cfg.LivenessEndpoint != "/liveness" {
		t.Errorf("Expected LIVENESS_ENDPOINT default '/liveness', got '%s'", cfg.LivenessEndpoint)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Expected LOG_LEVEL default 'info', got '%s'", cfg.Log.Level)
	}

	if cfg.Log.Format != "json" {
		t.Errorf("Expected LOG_FORMAT default 'json', got '%s'", cfg.Log.Format)
	}
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	os.Clearenv()
	os.Setenv("HOST", "0.0.0.0")
	os.Setenv("PORT", "9000")
	os.Setenv("READ_HEADER_TIMEOUT", "5")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "console")

	defer os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Host != "0.0.0.0" {
		t.Errorf("Expected HOST '0.0.0.0', got '%s'", cfg.Host)
	}

	if cfg.Port != "9000" {
		t.Errorf("Expected PORT '9000', got '%s'", cfg.Port)
	}

	if cfg.ReadHeaderTimeout != 5*time.Second {
		t.Errorf("Expected READ_HEADER_TIMEOUT 5s, got %v", cfg.ReadHeaderTimeout)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Expected LOG_LEVEL 'debug', got '%s'", cfg.Log.Level)
	}

	if cfg.Log.Format != "console" {
		t.Errorf("Expected LOG_FORMAT 'console', got '%s'", cfg.Log.Format)
	}
}

func TestLoad_InvalidIntFallsBackToDefault(t *testing.T) {
	os.Clearenv()
	os.Setenv("READ_HEADER_TIMEOUT", "not-a-number")

	defer os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.ReadHeaderTimeout != 20*time.Second {
		t.Errorf("Expected fallback READ_HEADER_TIMEOUT 20s, got %v", cfg.ReadHeaderTimeout)
	}
}
