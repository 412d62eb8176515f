package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	DatabaseURL     string `yaml:"database_url"`
	ServerPort      string `yaml:"server_port"`
	FrontendURL     string `yaml:"frontend_url"`
	Auth0IssuerURL  string `yaml:"auth0_issuer_url"`
	Auth0Audience   string `yaml:"auth0_audience"`
	Auth0ClientID   string `yaml:"auth0_client_id"`
	RedisURL        string `yaml:"redis_url"`
	RabbitMQURL     string `yaml:"rabbitmq_url"`
	RateLimit       string `yaml:"rate_limit"`
	EnableHSTS      bool   `yaml:"enable_hsts"`
	ServerDebugMode bool   `yaml:"server_debug_mode"`
	WorkerDebugMode bool   `yaml:"worker_debug_mode"`
	WorkerPrefetch  int    `yaml:"worker_prefetch"`
	OTELEnabled     bool   `yaml:"otel_enabled"`
	OTELEndpoint    string `yaml:"otel_endpoint"`
}

// Load builds configuration from the environment. When CONFIG_FILE points at
// a YAML file it is read first and the environment overrides it, so secrets
// can stay in the environment while static settings live in the file.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:     "8080",
		FrontendURL:    "http://localhost:3000",
		RedisURL:       "redis://localhost:6379/0",
		RateLimit:      "20-S",
		WorkerPrefetch: 1,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.Auth0IssuerURL == "" {
		return nil, fmt.Errorf("AUTH0_ISSUER_URL is required")
	}
	if cfg.Auth0Audience == "" {
		return nil, fmt.Errorf("AUTH0_AUDIENCE is required")
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	setEnv(&cfg.DatabaseURL, "DATABASE_URL")
	setEnv(&cfg.ServerPort, "SERVER_PORT")
	setEnv(&cfg.FrontendURL, "FRONTEND_URL")
	setEnv(&cfg.Auth0IssuerURL, "AUTH0_ISSUER_URL")
	setEnv(&cfg.Auth0Audience, "AUTH0_AUDIENCE")
	setEnv(&cfg.Auth0ClientID, "AUTH0_CLIENT_ID")
	setEnv(&cfg.RedisURL, "REDIS_URL")
	setEnv(&cfg.RabbitMQURL, "RABBITMQ_URL")
	setEnv(&cfg.RateLimit, "RATE_LIMIT")
	setEnvBool(&cfg.EnableHSTS, "ENABLE_HSTS")
	setEnvBool(&cfg.ServerDebugMode, "SERVER_DEBUG_MODE")
	setEnvBool(&cfg.WorkerDebugMode, "WORKER_DEBUG_MODE")
	setEnvInt(&cfg.WorkerPrefetch, "WORKER_PREFETCH")
	setEnvBool(&cfg.OTELEnabled, "OTEL_ENABLED")
	setEnv(&cfg.OTELEndpoint, "OTEL_EXPORTER_OTLP_ENDPOINT")
}

func setEnv(target *string, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}

func setEnvBool(target *bool, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value == "true" || value == "1" || value == "yes"
	}
}

func setEnvInt(target *int, key string) {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			*target = intValue
		}
	}
}
