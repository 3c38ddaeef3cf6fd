// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

// Package resolve implements room-to-map resolution: parsing the play
// URI, walking the room directory, coordinating artifact materialization
// against the external map store, and building the descriptor served to
// clients. Every internal failure past basic request validation degrades
// to the fallback descriptor instead of surfacing as an error.
package resolve

import (
	"context"

	"github.com/wayfarer-app/wayfarer/internal/config"
	"github.com/wayfarer-app/wayfarer/internal/models"
)

// Kind discriminates resolution outcomes.
type Kind int

const (
	// KindDescriptor carries a map descriptor, either resolved or fallback.
	KindDescriptor Kind = iota

	// KindRedirect carries a redirect to the start room.
	KindRedirect

	// KindClientError carries a structured 400-class error.
	KindClientError

	// KindUnauthorized carries a structured 401 error.
	KindUnauthorized
)

// Resolution is the tagged outcome of a resolution request. Exactly one
// payload field is populated, selected by Kind.
type Resolution struct {
	Kind       Kind
	Descriptor *models.MapDescriptor
	Redirect   *models.RedirectResponse
	Err        *models.ErrorResponse
}

// NewDescriptor wraps a descriptor outcome.
func NewDescriptor(d models.MapDescriptor) Resolution {
	return Resolution{Kind: KindDescriptor, Descriptor: &d}
}

// NewRedirect wraps a redirect outcome.
func NewRedirect(redirectURL string) Resolution {
	return Resolution{Kind: KindRedirect, Redirect: &models.RedirectResponse{RedirectURL: redirectURL}}
}

// NewClientError wraps an explicit client error.
func NewClientError(code, title, details string) Resolution {
	return Resolution{Kind: KindClientError, Err: &models.ErrorResponse{
		Status:  "error",
		Type:    models.ErrorTypeError,
		Title:   title,
		Code:    code,
		Details: details,
	}}
}

// NewUnauthorized wraps an authorization failure.
func NewUnauthorized(details string) Resolution {
	return Resolution{Kind: KindUnauthorized, Err: &models.ErrorResponse{
		Status:   "error",
		Type:     models.ErrorTypeUnauthorized,
		Title:    "Unauthorized",
		Subtitle: "Your session could not be verified",
		Code:     models.CodeUnauthorized,
		Details:  details,
	}}
}

// RoomStore is the directory the resolver reads rooms from and persists
// cached artifact pointers into. *database.DB satisfies it.
type RoomStore interface {
	// ResolveRoom returns (nil, nil) when the room is unknown or has no
	// effective source map.
	ResolveRoom(ctx context.Context, universe, world, room string) (*models.ResolvedRoom, error)

	// UpdateRoomWamURL persists the cached artifact pointer, last writer
	// wins.
	UpdateRoomWamURL(ctx context.Context, roomID, wamURL string) error
}

// Settings is the immutable resolution-relevant snapshot of the service
// configuration, captured once at startup.
type Settings struct {
	// Configured is true only when storage base URL, storage token, and
	// play base URL are all present. When false the coordinator never
	// touches the external store.
	Configured bool

	StorageBaseURL string
	PlayBaseURL    string

	StartRoomURL  string
	StartMapURL   string
	StaticBaseURL string
	Modules       []string
}

// SettingsFromConfig snapshots the resolution settings.
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		Configured:     cfg.StorageConfigured(),
		StorageBaseURL: cfg.Storage.BaseURL,
		PlayBaseURL:    cfg.Play.BaseURL,
		StartRoomURL:   cfg.Play.StartRoomURL,
		StartMapURL:    cfg.Play.StartMapURL,
		StaticBaseURL:  cfg.Play.StaticBaseURL,
		Modules:        cfg.Play.Modules,
	}
}
