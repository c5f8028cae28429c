package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/propdex/internal/domain"
)

func validConfig() Config {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{Addrs: []string{"localhost:6379"}},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig()

	if cfg.Database.Driver != DriverValkey {
		t.Errorf("driver = %q, want valkey", cfg.Database.Driver)
	}
	if cfg.Catalog.KeyPrefix != "propdex:" || cfg.Catalog.PageSize != 12 || cfg.Catalog.RefreshIntervalSec != 60 {
		t.Errorf("unexpected catalog defaults: %+v", cfg.Catalog)
	}
	if cfg.Events.Queue != "propdex.catalog.changed" {
		t.Errorf("queue = %q", cfg.Events.Queue)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(_ *Config) {}},
		{
			name:    "bad port",
			mutate:  func(c *Config) { c.HTTP.Port = 70000 },
			wantErr: "http.port",
		},
		{
			name:    "redis without addrs",
			mutate:  func(c *Config) { c.Database.Driver = DriverRedis; c.Database.Addrs = nil },
			wantErr: "database.addrs",
		},
		{
			name:    "postgres without url",
			mutate:  func(c *Config) { c.Database.Driver = DriverPostgres },
			wantErr: "database.url",
		},
		{
			name: "postgres with url",
			mutate: func(c *Config) {
				c.Database.Driver = DriverPostgres
				c.Database.Addrs = nil
				c.Database.URL = "postgres://localhost/propdex"
			},
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Database.Driver = "mongo" },
			wantErr: "database.driver",
		},
		{
			name:    "events without url",
			mutate:  func(c *Config) { c.Events.Enabled = true },
			wantErr: "events.url",
		},
		{
			name:    "empty cors origin",
			mutate:  func(c *Config) { c.CORS.AllowedOrigins = []string{"https://example.in", ""} },
			wantErr: "cors.allowed_origins",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_LandingPresets(t *testing.T) {
	cfg := validConfig()
	cfg.Landing = []LandingPreset{
		{Slug: "ready-to-move-flats", Page: "residential", Query: "status=ready-to-move&type=apartment"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.Landing = append(cfg.Landing, LandingPreset{Slug: "trending-shops", Page: "commercial", Query: "status=trending"})
	err := cfg.Validate()
	if !errors.Is(err, domain.ErrInvalidPreset) {
		t.Fatalf("expected ErrInvalidPreset, got %v", err)
	}
}

func TestParse_ExpandsEnv(t *testing.T) {
	t.Setenv("PROPDEX_TEST_PORT", "9090")
	t.Setenv("PROPDEX_TEST_EMPTY", "")

	data := []byte(`
http:
  port: ${PROPDEX_TEST_PORT}
database:
  addrs: ["${PROPDEX_TEST_EMPTY:-localhost:6379}"]
  password: "${PROPDEX_TEST_UNSET}"
landing:
  - slug: 2-bhk-flats-dwarka-expressway
    page: residential
    query: bhk=2-bhk&locality=dwarka-expressway
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.HTTP.Port)
	}
	if len(cfg.Database.Addrs) != 1 || cfg.Database.Addrs[0] != "localhost:6379" {
		t.Errorf("addrs = %v", cfg.Database.Addrs)
	}
	if cfg.Database.Password != "" {
		t.Errorf("password = %q, want empty", cfg.Database.Password)
	}
	if got := cfg.LandingPresets(); len(got) != 1 || got[0].Page != "residential" {
		t.Errorf("landing presets = %+v", got)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("http: [")); err == nil {
		t.Error("expected yaml error")
	}
	if _, err := Parse([]byte("http:\n  port: 0\n")); err == nil {
		t.Error("expected validation error")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("GetEnv() = %q, want local", got)
	}
	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("GetEnv() = %q, want prod", got)
	}
}

func TestLoad_LocalConfig(t *testing.T) {
	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Landing) == 0 {
		t.Error("local config should ship landing presets")
	}
}
