package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	def := DefaultConfig()
	if cfg.BackendURL != def.BackendURL {
		t.Errorf("backend_url: got %q, want %q", cfg.BackendURL, def.BackendURL)
	}
	if cfg.Port != def.Port {
		t.Errorf("port: got %d, want %d", cfg.Port, def.Port)
	}
	if cfg.SessionTTLHours != def.SessionTTLHours {
		t.Errorf("session_ttl_hours: got %d", cfg.SessionTTLHours)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".exhibits-admin.yml")

	cfg := DefaultConfig()
	cfg.BackendURL = "https://exhibits.example.edu"
	cfg.Port = 9090
	cfg.MaxUploadMB = 128

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.BackendURL != "https://exhibits.example.edu" {
		t.Errorf("backend_url: got %q", loaded.BackendURL)
	}
	if loaded.Port != 9090 {
		t.Errorf("port: got %d", loaded.Port)
	}
	if loaded.MaxUploadMB != 128 {
		t.Errorf("max_upload_mb: got %d", loaded.MaxUploadMB)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".exhibits-admin.yml")

	cfg := DefaultConfig()
	cfg.BackendURL = "http://from-file:8000"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	t.Setenv("EXHIBITS_BACKEND_URL", "http://from-env:8000")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.BackendURL != "http://from-env:8000" {
		t.Errorf("backend_url: got %q, want env override", loaded.BackendURL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"missing backend url", func(c *Config) { c.BackendURL = "" }, true},
		{"relative backend url", func(c *Config) { c.BackendURL = "localhost:8000" }, true},
		{"port zero", func(c *Config) { c.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Port = 70000 }, true},
		{"missing data dir", func(c *Config) { c.DataDir = "" }, true},
		{"zero session ttl", func(c *Config) { c.SessionTTLHours = 0 }, true},
		{"zero upload cap", func(c *Config) { c.MaxUploadMB = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSaveWritesReadableYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if len(data) == 0 {
		t.Error("config file is empty")
	}
}
