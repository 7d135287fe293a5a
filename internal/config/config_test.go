package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DAYBOOK_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Path != "data/daybook.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if cfg.Quote.URL != "https://zenquotes.io/api/today" {
		t.Errorf("Quote.URL = %q", cfg.Quote.URL)
	}
	if time.Duration(cfg.Quote.Timeout) != 3*time.Second {
		t.Errorf("Quote.Timeout = %v, want 3s", time.Duration(cfg.Quote.Timeout))
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v, want info/json", cfg.Log)
	}
}

func TestLoadFromFile_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daybook.yaml")
	content := `
server:
  port: 9090
  read_timeout: 5s
database:
  path: /tmp/test.db
quote:
  url: http://localhost:9/quote
  timeout: 500ms
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Server.Port)
	}
	if time.Duration(cfg.Server.ReadTimeout) != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want 5s", time.Duration(cfg.Server.ReadTimeout))
	}
	if cfg.Database.Path != "/tmp/test.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if time.Duration(cfg.Quote.Timeout) != 500*time.Millisecond {
		t.Errorf("Quote.Timeout = %v, want 500ms", time.Duration(cfg.Quote.Timeout))
	}
	// Unset fields keep defaults.
	if time.Duration(cfg.Server.WriteTimeout) != 30*time.Second {
		t.Errorf("WriteTimeout = %v, want default 30s", time.Duration(cfg.Server.WriteTimeout))
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daybook.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DAYBOOK_CONFIG_PATH", path)
	t.Setenv("DAYBOOK_PORT", "7070")
	t.Setenv("DAYBOOK_API_KEY", "secret-key")
	t.Setenv("DAYBOOK_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("Port = %d, want env override 7070", cfg.Server.Port)
	}
	if cfg.Auth.APIKey != "secret-key" {
		t.Errorf("Auth.APIKey = %q, want env value", cfg.Auth.APIKey)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
}

func TestLoad_APIKeyNeverFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daybook.yaml")
	if err := os.WriteFile(path, []byte("auth:\n  apikey: from-yaml\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DAYBOOK_CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.APIKey != "" {
		t.Errorf("Auth.APIKey = %q, want empty: key must be env-only", cfg.Auth.APIKey)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"empty db path", func(c *Config) { c.Database.Path = "" }},
		{"zero quote timeout", func(c *Config) { c.Quote.Timeout = 0 }},
		{"unknown log level", func(c *Config) { c.Log.Level = "verbose" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newDefaults()
			tt.mutate(cfg)
			if err := cfg.validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
