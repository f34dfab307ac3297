package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr          string            `yaml:"addr"`
	JWTSecret     string            `yaml:"jwt_secret"`
	APITimeout    time.Duration     `yaml:"timeout"`
	DatabasePath  string            `yaml:"database_path"`
	TokenDuration time.Duration     `yaml:"token_duration"`
	RedisURL      string            `yaml:"redis_url"`
	CacheTTL      time.Duration     `yaml:"cache_ttl"`
	Engine        EngineConfig      `yaml:"engine"`
	Maintenance   MaintenanceConfig `yaml:"maintenance"`
}

// EngineConfig configures the generative-text collaborator.
type EngineConfig struct {
	Model                   string        `yaml:"model"`
	BaseURL                 string        `yaml:"base_url"`
	Timeout                 time.Duration `yaml:"timeout"`
	Retries                 int           `yaml:"retries"`
	Backoff                 time.Duration `yaml:"backoff"`
	CircuitFailureThreshold int           `yaml:"circuit_failure_threshold"`
	CircuitReset            time.Duration `yaml:"circuit_reset"`
}

// MaintenanceConfig controls the stale job posting sweep.
type MaintenanceConfig struct {
	// Spec is a robfig/cron schedule, e.g. "@every 24h". Empty disables the sweep.
	Spec string `yaml:"spec"`
	// MaxJobAgeDays is the posting age after which a job is marked inactive.
	MaxJobAgeDays int `yaml:"max_job_age_days"`
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:          getEnv("PATHFINDER_ADDR", ":8080"),
		JWTSecret:     getEnv("PATHFINDER_JWT_SECRET", "supersecretkey"),
		APITimeout:    15 * time.Second,
		DatabasePath:  getEnv("PATHFINDER_DATABASE_PATH", "pathfinder.db"),
		TokenDuration: 1 * time.Hour,
		RedisURL:      os.Getenv("PATHFINDER_REDIS_URL"),
		CacheTTL:      5 * time.Minute,
		Engine: EngineConfig{
			Model:                   "llama3",
			BaseURL:                 "http://localhost:11434",
			Timeout:                 30 * time.Second,
			Retries:                 2,
			Backoff:                 500 * time.Millisecond,
			CircuitFailureThreshold: 5,
			CircuitReset:            30 * time.Second,
		},
		Maintenance: MaintenanceConfig{
			Spec:          "@every 24h",
			MaxJobAgeDays: 60,
		},
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate rejects configurations that cannot serve. The insecure default
// JWT secret is tolerated only when PATHFINDER_ENV is development.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path is required")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.TokenDuration <= 0 {
		return fmt.Errorf("token_duration must be positive")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("jwt_secret is required")
	}
	if c.JWTSecret == "supersecretkey" && getEnv("PATHFINDER_ENV", "development") != "development" {
		return fmt.Errorf("jwt_secret must be changed outside development")
	}
	if c.Engine.Model == "" {
		return fmt.Errorf("engine model is required")
	}
	if c.Maintenance.MaxJobAgeDays < 0 {
		return fmt.Errorf("max_job_age_days must not be negative")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
