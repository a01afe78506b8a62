package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() with no file = %v, want defaults", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("default port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.SSLMode != "disable" {
		t.Fatalf("default sslmode = %q", cfg.Database.SSLMode)
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
database:
  dbname: "campuscore_test"
jwt:
  secret: "file-secret"
logging:
  level: "debug"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Database.DBName != "campuscore_test" {
		t.Fatalf("dbname = %q", cfg.Database.DBName)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("log level = %q", cfg.Logging.Level)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
jwt:
  secret: "file-secret"
`)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Fatalf("port = %q, want env override 7070", cfg.Server.Port)
	}
	if cfg.Database.MaxOpenConns != 25 {
		t.Fatalf("max open conns = %d, want 25", cfg.Database.MaxOpenConns)
	}
}

func TestInvalidDurationRejected(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: "file-secret"
  access_token_expiration: "not-a-duration"
`)

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig() with bad duration should fail validation")
	}
}

func TestPostgresConnectionString(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.Database.Host = "db.internal"
	cfg.Database.User = "svc"
	cfg.Database.Password = "pw"
	cfg.Database.DBName = "campuscore"

	got := cfg.GetPostgresConnectionString()
	want := "postgres://svc:pw@db.internal:5432/campuscore?sslmode=disable"
	if got != want {
		t.Fatalf("connection string = %q, want %q", got, want)
	}
}
