// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

// Package api provides HTTP routing and handlers using the Chi router.
package api

import (
	"context"

	"github.com/wayfarer-app/wayfarer/internal/auth"
	"github.com/wayfarer-app/wayfarer/internal/models"
	"github.com/wayfarer-app/wayfarer/internal/resolve"
)

// RoomDirectory is the subset of the database the handlers need directly:
// the strict room lookup and the readiness probe. Map resolution goes
// through the resolve service instead.
type RoomDirectory interface {
	GetRoomBySlugs(ctx context.Context, universe, world, room string) (*models.ResolvedRoom, error)
	Ping(ctx context.Context) error
}

// Handler holds the HTTP handler dependencies.
type Handler struct {
	resolver   *resolve.Service
	authorizer auth.Authorizer
	directory  RoomDirectory
}

// NewHandler creates the API handler.
func NewHandler(resolver *resolve.Service, authorizer auth.Authorizer, directory RoomDirectory) *Handler {
	return &Handler{
		resolver:   resolver,
		authorizer: authorizer,
		directory:  directory,
	}
}
