// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

// Package config defines the Wayfarer configuration model and its Koanf v2
// loader. Configuration is loaded once at startup and injected as an
// immutable value into the components that need it; nothing in the service
// reads process-wide state ad hoc.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the Wayfarer server.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Play     PlayConfig     `koanf:"play"`
	Storage  StorageConfig  `koanf:"storage"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout time.Duration `koanf:"timeout"`
}

// DatabaseConfig holds settings for the DuckDB backing store.
type DatabaseConfig struct {
	Path         string `koanf:"path" validate:"required"`
	MaxMemory    string `koanf:"max_memory"`
	Threads      int    `koanf:"threads"` // 0 = runtime.NumCPU()
	SeedDemoData bool   `koanf:"seed_demo_data"`
}

// PlayConfig holds settings for the externally visible play surface:
// where players land by default, where static branding assets live, and
// which optional front-end modules authenticated visitors should load.
type PlayConfig struct {
	// BaseURL is the externally visible base address of the play service.
	// Part of the storage-configured triple: materialization is skipped
	// entirely when it is empty.
	BaseURL string `koanf:"base_url" validate:"omitempty,url"`

	// StartRoomURL is the default start location used for root-path
	// redirects. Absolute URL, play-URI-shaped path, or bare relative path.
	StartRoomURL string `koanf:"start_room_url"`

	// StartMapURL is the always-available default map served by the
	// fallback descriptor.
	StartMapURL string `koanf:"start_map_url" validate:"required,url"`

	// StaticBaseURL is the base address for static branding assets.
	// Branding metatags are omitted from descriptors when empty.
	StaticBaseURL string `koanf:"static_base_url" validate:"omitempty,url"`

	// Modules lists the optional front-end feature modules offered to
	// authenticated visitors.
	Modules []string `koanf:"modules"`
}

// StorageConfig holds settings for the external map-storage service that
// hosts materialized artifacts.
type StorageConfig struct {
	BaseURL  string        `koanf:"base_url" validate:"omitempty,url"`
	APIToken string        `koanf:"api_token"`
	Timeout  time.Duration `koanf:"timeout"`
}

// SecurityConfig holds authorization and HTTP hardening settings.
type SecurityConfig struct {
	// AuthMode selects the authorizer collaborator: "none" or "jwt".
	AuthMode string `koanf:"auth_mode" validate:"oneof=none jwt"`

	// JWTSecret signs and verifies bearer tokens in jwt mode.
	JWTSecret string `koanf:"jwt_secret"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// StorageConfigured reports whether all three values required to reach the
// external map-storage service are present: the storage base address, the
// storage auth token, and the externally visible play base address. When
// any is missing the coordinator skips materialization entirely.
func (c *Config) StorageConfigured() bool {
	return c.Storage.BaseURL != "" && c.Storage.APIToken != "" && c.Play.BaseURL != ""
}

// Validate checks cross-field constraints that struct tags cannot express.
func (c *Config) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}
	if c.Security.AuthMode == "jwt" && len(c.Security.JWTSecret) < 32 {
		return fmt.Errorf("security.jwt_secret must be at least 32 characters in jwt mode")
	}
	return nil
}
