// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// Env-driven tests share process environment, so none of them run in
// parallel.

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 3870 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.Database.Path != "/data/wayfarer.duckdb" {
		t.Errorf("database path = %q", cfg.Database.Path)
	}
	if cfg.Play.StartMapURL == "" {
		t.Error("default start map must be set")
	}
	if cfg.Security.AuthMode != "none" {
		t.Errorf("auth mode = %q", cfg.Security.AuthMode)
	}
	if cfg.StorageConfigured() {
		t.Error("storage must be unconfigured by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "4000")
	t.Setenv("MAP_STORAGE_URL", "https://storage.test")
	t.Setenv("MAP_STORAGE_API_TOKEN", "secret-token")
	t.Setenv("PLAY_URL", "https://play.test")
	t.Setenv("PLAY_MODULES", "chat, follow")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 4000 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.Storage.BaseURL != "https://storage.test" {
		t.Errorf("storage base = %q", cfg.Storage.BaseURL)
	}
	if !cfg.StorageConfigured() {
		t.Error("storage triple set, StorageConfigured should be true")
	}
	if !reflect.DeepEqual(cfg.Play.Modules, []string{"chat", "follow"}) {
		t.Errorf("modules = %v", cfg.Play.Modules)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q", cfg.Logging.Level)
	}
}

func TestLoadIgnoresUnmappedEnv(t *testing.T) {
	t.Setenv("SOME_RANDOM_VAR", "value")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 3870 {
		t.Errorf("unmapped env var changed configuration: port = %d", cfg.Server.Port)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  port: 9999
play:
  start_map_url: "https://file.test/start.tmj"
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("port = %d, want file value", cfg.Server.Port)
	}
	if cfg.Play.StartMapURL != "https://file.test/start.tmj" {
		t.Errorf("start map = %q", cfg.Play.StartMapURL)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9999\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "4444")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 4444 {
		t.Errorf("port = %d, env must override file", cfg.Server.Port)
	}
}

func TestStorageConfiguredRequiresAllThree(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                          string
		storageURL, apiToken, playURL string
		want                          bool
	}{
		{"all set", "https://s.test", "tok", "https://p.test", true},
		{"missing storage url", "", "tok", "https://p.test", false},
		{"missing token", "https://s.test", "", "https://p.test", false},
		{"missing play url", "https://s.test", "tok", "", false},
		{"all empty", "", "", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			cfg.Storage.BaseURL = tt.storageURL
			cfg.Storage.APIToken = tt.apiToken
			cfg.Play.BaseURL = tt.playURL
			if got := cfg.StorageConfigured(); got != tt.want {
				t.Errorf("StorageConfigured() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateRejectsShortJWTSecret(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Security.AuthMode = "jwt"
	cfg.Security.JWTSecret = "too-short"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for short jwt_secret in jwt mode")
	}

	cfg.Security.JWTSecret = "0123456789abcdef0123456789abcdef"
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid jwt config rejected: %v", err)
	}
}

func TestValidateRejectsBadAuthMode(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Security.AuthMode = "basic"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown auth_mode")
	}
}
