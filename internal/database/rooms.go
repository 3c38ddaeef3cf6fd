// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wayfarer-app/wayfarer/internal/models"
)

// ErrRoomNotFound is returned by the strict lookup when no room matches
// the given slug triple.
var ErrRoomNotFound = errors.New("room not found")

// resolveQuery walks universe -> world -> room by slug and denormalizes
// everything the descriptor builder needs. The effective source map is
// the room's own map URL, falling back to the world default.
const resolveQuery = `
	SELECT
		r.id,
		r.slug,
		r.name,
		CASE WHEN r.map_url <> '' THEN r.map_url ELSE w.map_url END AS map_url,
		r.wam_url,
		r.is_public,
		r.authentication_mandatory,
		w.slug,
		u.slug,
		u.name,
		COALESCE(o.display_name, ''),
		COALESCE(o.email, '')
	FROM universes u
	JOIN worlds w ON w.universe_id = u.id
	JOIN rooms r ON r.world_id = w.id
	LEFT JOIN users o ON o.id = u.owner_id
	WHERE u.slug = ? AND w.slug = ? AND r.slug = ?`

// ResolveRoom looks up a room by its universe/world/room slug triple.
//
// It returns (nil, nil) when no such room exists OR when the room exists
// but has no effective source map. Callers treat both the same way: the
// request degrades to the fallback descriptor rather than failing. Use
// GetRoomBySlugs when absence must be distinguishable.
func (db *DB) ResolveRoom(ctx context.Context, universe, world, room string) (*models.ResolvedRoom, error) {
	rr, err := db.queryResolvedRoom(ctx, universe, world, room)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if rr.MapURL == "" {
		return nil, nil
	}
	return rr, nil
}

// GetRoomBySlugs is the strict variant of ResolveRoom: a missing room is
// reported as ErrRoomNotFound, and rooms without a source map are still
// returned.
func (db *DB) GetRoomBySlugs(ctx context.Context, universe, world, room string) (*models.ResolvedRoom, error) {
	rr, err := db.queryResolvedRoom(ctx, universe, world, room)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return rr, nil
}

func (db *DB) queryResolvedRoom(ctx context.Context, universe, world, room string) (*models.ResolvedRoom, error) {
	start := time.Now()

	var rr models.ResolvedRoom
	err := db.conn.QueryRowContext(ctx, resolveQuery, universe, world, room).Scan(
		&rr.RoomID,
		&rr.RoomSlug,
		&rr.RoomName,
		&rr.MapURL,
		&rr.WamURL,
		&rr.IsPublic,
		&rr.AuthenticationMandatory,
		&rr.WorldSlug,
		&rr.UniverseSlug,
		&rr.UniverseName,
		&rr.OwnerDisplayName,
		&rr.OwnerEmail,
	)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		observeQuery("resolve_room", start, err)
		return nil, fmt.Errorf("failed to resolve room %s/%s/%s: %w", universe, world, room, err)
	}
	observeQuery("resolve_room", start, nil)
	if err != nil {
		return nil, err
	}
	return &rr, nil
}

// UpdateRoomWamURL persists the cached artifact pointer for a room.
//
// The pointer is derived state: concurrent writers racing on the same
// room all derive the same canonical value, so last-writer-wins is safe
// and no row locking is needed.
func (db *DB) UpdateRoomWamURL(ctx context.Context, roomID, wamURL string) error {
	start := time.Now()
	_, err := db.conn.ExecContext(ctx,
		`UPDATE rooms SET wam_url = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		wamURL, roomID)
	observeQuery("update_wam_url", start, err)
	if err != nil {
		return fmt.Errorf("failed to update wam_url for room %s: %w", roomID, err)
	}
	return nil
}
