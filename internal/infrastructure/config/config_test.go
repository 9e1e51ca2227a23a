package config

import (
	"strings"
	"testing"
)

func TestDatabaseDriver(t *testing.T) {
	cases := map[string]string{
		"":           "sqlite3",
		"SQLite":     "sqlite3",
		"postgresql": "postgres",
		"pgx":        "pgx",
	}
	for in, want := range cases {
		cfg := &Config{Database: DatabaseConfig{Driver: in}}
		got, err := cfg.DatabaseDriver()
		if err != nil || got != want {
			t.Fatalf("DatabaseDriver(%q) = %q, %v want %q", in, got, err, want)
		}
	}
	if _, err := (&Config{Database: DatabaseConfig{Driver: "mysql"}}).DatabaseDriver(); err == nil {
		t.Fatal("expected error for mysql")
	}
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Driver: "sqlite3", Path: "data/verbs.db"}}
	dsn, err := cfg.DatabaseURL()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.HasPrefix(dsn, "file:data/verbs.db?") {
		t.Fatalf("unexpected sqlite dsn %q", dsn)
	}

	cfg = &Config{Database: DatabaseConfig{
		Driver: "pgx", User: "u", Password: "p", Host: "db", Port: 5432, Name: "verbs", SSLMode: "disable",
	}}
	dsn, err = cfg.DatabaseURL()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if dsn != "postgres://u:p@db:5432/verbs?sslmode=disable" {
		t.Fatalf("unexpected postgres dsn %q", dsn)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.HTTPPort != 8080 || cfg.Sync.Workers != 4 || cfg.Log.Level != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}
