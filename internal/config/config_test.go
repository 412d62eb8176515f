package config

import (
	"os"
	"path/filepath"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/fightpulse_test")
	t.Setenv("AUTH0_ISSUER_URL", "https://fightpulse.us.auth0.com/")
	t.Setenv("AUTH0_AUDIENCE", "https://fightpulse-api.com")
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("AUTH0_ISSUER_URL", "https://fightpulse.us.auth0.com/")
	t.Setenv("AUTH0_AUDIENCE", "https://fightpulse-api.com")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is missing")
	}
}

func TestLoadRequiresAuth0Settings(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/fightpulse_test")
	t.Setenv("AUTH0_ISSUER_URL", "")
	t.Setenv("AUTH0_AUDIENCE", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when Auth0 settings are missing")
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "")
	t.Setenv("RATE_LIMIT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want default 8080", cfg.ServerPort)
	}
	if cfg.RateLimit != "20-S" {
		t.Errorf("RateLimit = %q, want default 20-S", cfg.RateLimit)
	}
	if cfg.WorkerPrefetch != 1 {
		t.Errorf("WorkerPrefetch = %d, want default 1", cfg.WorkerPrefetch)
	}
}

func TestLoadYAMLFileWithEnvOverride(t *testing.T) {
	setRequiredEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := "server_port: \"9090\"\nrate_limit: \"5-S\"\nenable_hsts: true\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("RATE_LIMIT", "50-M")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q, want file value 9090", cfg.ServerPort)
	}
	if cfg.RateLimit != "50-M" {
		t.Errorf("RateLimit = %q, want env override 50-M", cfg.RateLimit)
	}
	if !cfg.EnableHSTS {
		t.Error("EnableHSTS should come from the file")
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	setRequiredEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(": not yaml ["), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}
