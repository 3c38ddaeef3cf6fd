// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

// Package models defines the data records stored in the backing store and
// the JSON shapes served at the HTTP boundary.
package models

// User is an account record. Only the fields needed for descriptor author
// attribution are modeled here; account management lives elsewhere.
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName,omitempty"`
	Email       string `json:"email,omitempty"`
}

// Universe is the root of the namespace. Slugs are globally unique.
type Universe struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	OwnerID  string `json:"ownerId,omitempty"`
	IsPublic bool   `json:"isPublic"`
}

// World is a sub-namespace within a Universe. Slugs are unique per
// universe. A world may carry its own default source map, inherited by
// rooms that do not set one.
type World struct {
	ID         string `json:"id"`
	UniverseID string `json:"universeId"`
	Slug       string `json:"slug"`
	MapURL     string `json:"mapUrl,omitempty"`
	WamURL     string `json:"wamUrl,omitempty"`
}

// Room is the leaf of the namespace. Slugs are unique per world.
//
// MapURL is the authoritative externally hosted source map. WamURL is a
// cached pointer to a materialized artifact in the external map-storage
// service; it is derived state and never authoritative for content.
type Room struct {
	ID                      string `json:"id"`
	WorldID                 string `json:"worldId"`
	Slug                    string `json:"slug"`
	Name                    string `json:"name"`
	MapURL                  string `json:"mapUrl,omitempty"`
	WamURL                  string `json:"wamUrl,omitempty"`
	IsPublic                bool   `json:"isPublic"`
	AuthenticationMandatory bool   `json:"authenticationMandatory"`
}

// ResolvedRoom is the denormalized result of the hierarchical
// Universe -> World -> Room lookup, carrying everything the descriptor
// builder needs in one record.
//
// MapURL is the effective source map: the room's own map URL, falling back
// to the world default when the room does not set one.
type ResolvedRoom struct {
	RoomID                  string
	RoomSlug                string
	RoomName                string
	MapURL                  string
	WamURL                  string
	IsPublic                bool
	AuthenticationMandatory bool

	WorldSlug    string
	UniverseSlug string
	UniverseName string

	OwnerDisplayName string
	OwnerEmail       string
}
