package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pathfinderhq/pathfinder/internal/config"
)

func validConfig() *config.Config {
	return &config.Config{
		Addr:          ":8080",
		JWTSecret:     "strongsecret",
		APITimeout:    5 * time.Second,
		DatabasePath:  "pathfinder.db",
		TokenDuration: time.Hour,
		Engine:        config.EngineConfig{Model: "llama3"},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected valid config, got: %v", err)
	}
}

func TestValidate_InsecureJWT_FailsWhenNotDevelopment(t *testing.T) {
	os.Setenv("PATHFINDER_ENV", "production")
	defer os.Unsetenv("PATHFINDER_ENV")

	cfg := validConfig()
	cfg.JWTSecret = "supersecretkey"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected Validate to fail for insecure JWT in non-development env")
	}
}

func TestValidate_InsecureJWT_AllowsDevelopment(t *testing.T) {
	os.Setenv("PATHFINDER_ENV", "development")
	defer os.Unsetenv("PATHFINDER_ENV")

	cfg := validConfig()
	cfg.JWTSecret = "supersecretkey"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected Validate to succeed in development env, got: %v", err)
	}
}

func TestValidate_MissingEngineModel(t *testing.T) {
	cfg := validConfig()
	cfg.Engine.Model = ""
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected Validate to fail for missing engine model")
	}
}

func TestValidate_NegativeJobAge(t *testing.T) {
	cfg := validConfig()
	cfg.Maintenance.MaxJobAgeDays = -1
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected Validate to fail for negative job age")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.Engine.Model != "llama3" {
		t.Errorf("Engine.Model = %q, want llama3", cfg.Engine.Model)
	}
	if cfg.Maintenance.Spec != "@every 24h" {
		t.Errorf("Maintenance.Spec = %q", cfg.Maintenance.Spec)
	}
}

func TestLoadConfig_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
addr: ":9090"
jwt_secret: filescret
engine:
  model: mistral
maintenance:
  spec: "@every 1h"
  max_job_age_days: 30
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want file override", cfg.Addr)
	}
	if cfg.Engine.Model != "mistral" {
		t.Errorf("Engine.Model = %q, want file override", cfg.Engine.Model)
	}
	if cfg.Maintenance.MaxJobAgeDays != 30 {
		t.Errorf("MaxJobAgeDays = %d, want 30", cfg.Maintenance.MaxJobAgeDays)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := config.LoadConfig("/does/not/exist.yaml"); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
