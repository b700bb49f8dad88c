package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is missing")
	}
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/eventdesk")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when JWT_SECRET is missing")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/eventdesk")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("JWT_EXPIRY_MINUTES", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Auth.JWTExpiry != time.Hour {
		t.Fatalf("expected default token expiry of 1h, got %s", cfg.Auth.JWTExpiry)
	}
	if cfg.Upload.Dir != "uploads" {
		t.Fatalf("expected default upload dir, got %q", cfg.Upload.Dir)
	}
}

func TestLoadFileEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := []byte(`
server:
  port: 9090
database:
  url: postgres://localhost/fromfile
auth:
  jwt_secret: file-secret
`)
	if err := os.WriteFile(path, contents, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("DATABASE_URL")
	os.Unsetenv("JWT_SECRET")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load config file: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Fatalf("env var should override file value, got port %d", cfg.Server.Port)
	}
	if cfg.Database.URL != "postgres://localhost/fromfile" {
		t.Fatalf("expected database URL from file, got %q", cfg.Database.URL)
	}
	if cfg.Auth.JWTSecret != "file-secret" {
		t.Fatalf("expected secret from file, got %q", cfg.Auth.JWTSecret)
	}
}
