package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 6835 || cfg.Addr() != ":6835" {
		t.Errorf("unexpected port: %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Driver = %q", cfg.Database.Driver)
	}
	if cfg.Uploads.MaxBytes != 10<<20 {
		t.Errorf("MaxBytes = %d", cfg.Uploads.MaxBytes)
	}
	if cfg.Auth.SessionTTL != 7*24*time.Hour {
		t.Errorf("SessionTTL = %v", cfg.Auth.SessionTTL)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins = %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := chdirTemp(t)

	yaml := []byte("server:\n  port: 9000\ndatabase:\n  dsn: from-file.db\ngists:\n  timeout: 3s\n")
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, yaml, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PORTFOLIO_SERVER_PORT", "9100")
	t.Setenv("PORTFOLIO_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("env should override file, got port %d", cfg.Server.Port)
	}
	if cfg.Database.DSN != "from-file.db" {
		t.Errorf("DSN = %q", cfg.Database.DSN)
	}
	if cfg.Gists.Timeout != 3*time.Second {
		t.Errorf("Gists.Timeout = %v", cfg.Gists.Timeout)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PORTFOLIO_AUTH_JWT_SECRET=from-dotenv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("PORTFOLIO_AUTH_JWT_SECRET") })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.JWTSecret != "from-dotenv" {
		t.Errorf("JWTSecret = %q", cfg.Auth.JWTSecret)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	chdirTemp(t)
	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Error("expected an error for a missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PORTFOLIO_DATABASE_DRIVER", "mysql")

	if _, err := Load(""); err == nil {
		t.Error("expected an error for an unsupported driver")
	}
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("warn", "text")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if log.GetLevel() != logrus.WarnLevel {
		t.Errorf("level = %v", log.GetLevel())
	}
	if _, ok := log.Formatter.(*logrus.TextFormatter); !ok {
		t.Errorf("expected a text formatter, got %T", log.Formatter)
	}

	if _, err := NewLogger("loud", "json"); err == nil {
		t.Error("expected an error for an unknown level")
	}
	if _, err := NewLogger("info", "xml"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
