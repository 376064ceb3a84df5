package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWritesDefaultConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load("", dir)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("config.yaml not written: %v", err)
	}
	if cfg.Server.Port != 80 || cfg.Server.Host != "0.0.0.0" {
		t.Fatalf("server=%+v want defaults", cfg.Server)
	}
	if cfg.ConfigPath == "" {
		t.Fatal("ConfigPath should point at the written file")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zenith.yaml")
	content := []byte("server:\n  port: 9090\ndatabase:\n  path: /tmp/x.db\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 9090 || cfg.Database.Path != "/tmp/x.db" || cfg.Log.Level != "debug" {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Fatalf("host=%s want default 0.0.0.0", cfg.Server.Host)
	}
	if cfg.ConfigPath != path {
		t.Fatalf("ConfigPath=%s want=%s", cfg.ConfigPath, path)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), ""); err == nil {
		t.Fatal("want error for missing --config file")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8181")
	t.Setenv("ZENITH_DATABASE_PATH", "/var/lib/zenith/bank.db")
	t.Setenv("ZENITH_DEFAULTS_TRANSACTION_LIMIT", "25")

	cfg, err := Load("", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr() != "127.0.0.1:8181" {
		t.Fatalf("addr=%s want=127.0.0.1:8181", cfg.Server.Addr())
	}
	if cfg.Database.Path != "/var/lib/zenith/bank.db" {
		t.Fatalf("db path=%s", cfg.Database.Path)
	}
	if cfg.Defaults.TransactionLimit != 25 {
		t.Fatalf("limit=%d want=25", cfg.Defaults.TransactionLimit)
	}
}

func TestLoadPrefixedEnvWinsOverBareEnv(t *testing.T) {
	t.Setenv("PORT", "8181")
	t.Setenv("ZENITH_SERVER_PORT", "7070")

	cfg, err := Load("", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 7070 {
		t.Fatalf("port=%d want=7070", cfg.Server.Port)
	}
}
