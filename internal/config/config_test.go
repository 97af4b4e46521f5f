package config

import (
	"strings"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != 8085 {
		t.Errorf("expected default port 8085, got %d", cfg.Server.Port)
	}
	if cfg.Parser.DPSWindow != DefaultDPSWindow {
		t.Errorf("expected default dps window %f, got %f", float64(DefaultDPSWindow), cfg.Parser.DPSWindow)
	}
	if cfg.Parser.ResolverConcurrency != 16 {
		t.Errorf("expected default resolver concurrency 16, got %d", cfg.Parser.ResolverConcurrency)
	}
	if len(cfg.Parser.TagInsensitiveSpells) != 2 {
		t.Errorf("expected 2 default tag-insensitive spells, got %v", cfg.Parser.TagInsensitiveSpells)
	}
}

func validConfig() *Config {
	cfg, _ := LoadConfig()
	return cfg
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "invalid port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "invalid server port",
		},
		{
			name:    "short jwt secret",
			mutate:  func(c *Config) { c.JWT.Secret = "too-short" },
			wantErr: "JWT secret",
		},
		{
			name:    "missing database name",
			mutate:  func(c *Config) { c.Database.Name = "" },
			wantErr: "database name",
		},
		{
			name:    "missing spell service url",
			mutate:  func(c *Config) { c.Services.SpellService.URL = "" },
			wantErr: "spell service URL",
		},
		{
			name:    "non-positive dps window",
			mutate:  func(c *Config) { c.Parser.DPSWindow = 0 },
			wantErr: "dps window",
		},
		{
			name:    "non-positive encounter duration",
			mutate:  func(c *Config) { c.Parser.DefaultEncounterDuration = -1 },
			wantErr: "default encounter duration",
		},
		{
			name:    "zero resolver concurrency",
			mutate:  func(c *Config) { c.Parser.ResolverConcurrency = 0 },
			wantErr: "resolver concurrency",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			if cfg == nil {
				t.Fatal("could not load a valid base config")
			}
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid config, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %q", tc.wantErr, err.Error())
			}
		})
	}
}

func TestGetDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		Name:     "gameserver_combatlog",
		User:     "postgres",
		Password: "postgres",
		SSLMode:  "disable",
	}

	dsn := db.GetDSN()
	for _, part := range []string{"host=localhost", "port=5432", "dbname=gameserver_combatlog", "sslmode=disable"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("expected dsn to contain %q, got %q", part, dsn)
		}
	}
}
