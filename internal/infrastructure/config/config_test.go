package config

import (
	"context"
	"testing"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_ACCESS_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("unexpected port: %q", cfg.Port)
	}
	if cfg.IsProduction() {
		t.Fatalf("expected development default")
	}
}

func TestLoad_MissingSecrets(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error when secrets are unset")
	}
}

func TestLoad_SecretsMustDiffer(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "same-secret")
	t.Setenv("JWT_REFRESH_SECRET", "same-secret")

	// A single secret collapses the access/refresh distinction; a leaked
	// access token could then be replayed as a refresh token.
	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error for identical secrets")
	}
}

func TestLoad_Production(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ENV", "production")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.IsProduction() {
		t.Fatalf("expected production mode")
	}
}
