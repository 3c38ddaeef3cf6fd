// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

package resolve

import (
	"context"

	"github.com/wayfarer-app/wayfarer/internal/logging"
	"github.com/wayfarer-app/wayfarer/internal/mapstorage"
	"github.com/wayfarer-app/wayfarer/internal/metrics"
	"github.com/wayfarer-app/wayfarer/internal/models"
	"github.com/wayfarer-app/wayfarer/internal/playuri"
)

// State names the terminal coordinator decisions.
type State string

const (
	// StateUnconfigured: storage is not configured, nothing was probed.
	StateUnconfigured State = "unconfigured"

	// StateExists: the artifact already existed in the store.
	StateExists State = "exists"

	// StateCreated: the artifact was materialized during this request.
	StateCreated State = "created"

	// StateProbeFailed: the existence probe failed; creation was skipped
	// because absence could not be established.
	StateProbeFailed State = "probe_failed"

	// StateCreateFailed: the artifact was absent but creation failed.
	StateCreateFailed State = "create_failed"
)

// Outcome is the coordinator's decision for one request. WamURL is empty
// unless the artifact is known to exist (StateExists or StateCreated).
type Outcome struct {
	State  State
	WamURL string
}

// Coordinator drives the artifact life-cycle for resolved rooms: probe
// the external store, materialize on absence, and keep the room's cached
// pointer in sync with the canonical artifact address.
//
// The canonical address is recomputed from the room's namespace
// coordinates and the current storage base URL on every request. The
// stored wam_url is only a cache: when the storage base address changes,
// the recomputed value diverges from the stored one and the coordinator
// repairs the row in place.
type Coordinator struct {
	store    mapstorage.Client
	rooms    RoomStore
	settings Settings
}

// NewCoordinator creates a materialization coordinator.
func NewCoordinator(store mapstorage.Client, rooms RoomStore, settings Settings) *Coordinator {
	return &Coordinator{store: store, rooms: rooms, settings: settings}
}

// Ensure makes the room's artifact available if possible and returns the
// decision. It never returns an error: every failure mode is a state the
// descriptor builder knows how to degrade from.
//
// Callers only invoke Ensure for rooms with an effective source map, so a
// room without one is never materialized.
func (c *Coordinator) Ensure(ctx context.Context, loc playuri.Location, room *models.ResolvedRoom) Outcome {
	outcome := c.ensure(ctx, loc, room)
	metrics.MaterializationsTotal.WithLabelValues(string(outcome.State)).Inc()
	return outcome
}

func (c *Coordinator) ensure(ctx context.Context, loc playuri.Location, room *models.ResolvedRoom) Outcome {
	if !c.settings.Configured {
		return Outcome{State: StateUnconfigured}
	}

	path := mapstorage.ComputePath(loc.Domain, loc.Universe, loc.World, loc.Room)
	canonical := mapstorage.ComputeURL(path, c.settings.StorageBaseURL)

	exists, err := c.store.Exists(ctx, path)
	if err != nil {
		// Absence could not be established; creating on a failed probe
		// risks clobbering an existing artifact.
		logging.Warn().Err(err).Str("path", path).Msg("Artifact probe failed, serving source map")
		return Outcome{State: StateProbeFailed}
	}

	state := StateExists
	if !exists {
		if err := c.store.Create(ctx, path, room.MapURL); err != nil {
			logging.Warn().Err(err).
				Str("path", path).
				Str("source_url", room.MapURL).
				Msg("Artifact creation failed, serving source map")
			return Outcome{State: StateCreateFailed}
		}
		state = StateCreated
		logging.Info().
			Str("path", path).
			Str("source_url", room.MapURL).
			Msg("Materialized map artifact")
	}

	c.repairPointer(ctx, room, canonical)
	return Outcome{State: state, WamURL: canonical}
}

// repairPointer persists the canonical artifact address when the cached
// value differs. A persist failure is logged but not fatal: the fresh
// value is still served this request and the next request retries.
func (c *Coordinator) repairPointer(ctx context.Context, room *models.ResolvedRoom, canonical string) {
	if room.WamURL == canonical {
		return
	}
	if room.WamURL != "" {
		metrics.CacheRepairsTotal.Inc()
		logging.Info().
			Str("room_id", room.RoomID).
			Str("stale", room.WamURL).
			Str("canonical", canonical).
			Msg("Repairing stale artifact pointer")
	}
	if err := c.rooms.UpdateRoomWamURL(ctx, room.RoomID, canonical); err != nil {
		logging.Warn().Err(err).Str("room_id", room.RoomID).Msg("Failed to persist artifact pointer")
	}
}
