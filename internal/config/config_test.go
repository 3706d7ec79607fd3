package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/msomdec/recipe-box/internal/config"
)

const validSecret = "0123456789abcdef0123456789abcdef"

// setBaseEnv pins JWT_SECRET and clears every other config variable, so
// tests see the documented defaults regardless of the ambient environment.
func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", validSecret)
	for _, key := range []string{"PORT", "DATABASE_PATH", "JWT_EXPIRY", "BCRYPT_COST", "CLIENT_ORIGIN"} {
		t.Setenv(key, "") // registers restore on cleanup
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.JWTExpiry != 168*time.Hour {
		t.Fatalf("expected default expiry 168h, got %s", cfg.JWTExpiry)
	}
	if cfg.BcryptCost != 12 {
		t.Fatalf("expected default bcrypt cost 12, got %d", cfg.BcryptCost)
	}
	if cfg.DatabasePath != "recipe-box.db" {
		t.Fatalf("expected default database path, got %s", cfg.DatabasePath)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_SECRET", "")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for missing JWT_SECRET")
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_SECRET", "too-short")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for short JWT_SECRET")
	}
}

func TestLoad_BcryptCostBounds(t *testing.T) {
	setBaseEnv(t)

	t.Setenv("BCRYPT_COST", "3")
	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for cost below 4")
	}

	t.Setenv("BCRYPT_COST", "15")
	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for cost above 14")
	}

	t.Setenv("BCRYPT_COST", "4")
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BcryptCost != 4 {
		t.Fatalf("expected cost 4, got %d", cfg.BcryptCost)
	}
}

func TestLoad_CustomExpiry(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_EXPIRY", "30m")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.JWTExpiry != 30*time.Minute {
		t.Fatalf("expected 30m expiry, got %s", cfg.JWTExpiry)
	}
}
