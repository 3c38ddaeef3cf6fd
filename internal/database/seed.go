// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wayfarer-app/wayfarer/internal/logging"
	"github.com/wayfarer-app/wayfarer/internal/models"
)

// CreateUser inserts a user record and returns it with a generated ID.
func (db *DB) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	start := time.Now()
	u.ID = uuid.NewString()
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO users (id, display_name, email) VALUES (?, ?, ?)`,
		u.ID, u.DisplayName, u.Email)
	observeQuery("create_user", start, err)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// CreateUniverse inserts a universe record and returns it with a
// generated ID. Slugs are globally unique; a duplicate slug fails.
func (db *DB) CreateUniverse(ctx context.Context, u models.Universe) (models.Universe, error) {
	start := time.Now()
	u.ID = uuid.NewString()
	var ownerID any
	if u.OwnerID != "" {
		ownerID = u.OwnerID
	}
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO universes (id, slug, name, owner_id, is_public) VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Slug, u.Name, ownerID, u.IsPublic)
	observeQuery("create_universe", start, err)
	if err != nil {
		return models.Universe{}, fmt.Errorf("failed to create universe %s: %w", u.Slug, err)
	}
	return u, nil
}

// CreateWorld inserts a world record and returns it with a generated ID.
func (db *DB) CreateWorld(ctx context.Context, w models.World) (models.World, error) {
	start := time.Now()
	w.ID = uuid.NewString()
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO worlds (id, universe_id, slug, map_url, wam_url) VALUES (?, ?, ?, ?, ?)`,
		w.ID, w.UniverseID, w.Slug, w.MapURL, w.WamURL)
	observeQuery("create_world", start, err)
	if err != nil {
		return models.World{}, fmt.Errorf("failed to create world %s: %w", w.Slug, err)
	}
	return w, nil
}

// CreateRoom inserts a room record and returns it with a generated ID.
func (db *DB) CreateRoom(ctx context.Context, r models.Room) (models.Room, error) {
	start := time.Now()
	r.ID = uuid.NewString()
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO rooms (id, world_id, slug, name, map_url, wam_url, is_public, authentication_mandatory)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.WorldID, r.Slug, r.Name, r.MapURL, r.WamURL, r.IsPublic, r.AuthenticationMandatory)
	observeQuery("create_room", start, err)
	if err != nil {
		return models.Room{}, fmt.Errorf("failed to create room %s: %w", r.Slug, err)
	}
	return r, nil
}

// SeedDemoData populates an empty directory with a small demo hierarchy
// so a fresh install resolves something useful. It is a no-op when any
// universe already exists.
func (db *DB) SeedDemoData(ctx context.Context) error {
	var count int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM universes`).Scan(&count); err != nil {
		return fmt.Errorf("failed to check for existing universes: %w", err)
	}
	if count > 0 {
		logging.Debug().Int("universes", count).Msg("Skipping demo seed, directory not empty")
		return nil
	}

	owner, err := db.CreateUser(ctx, models.User{
		DisplayName: "Wayfarer Demo",
		Email:       "demo@wayfarer.app",
	})
	if err != nil {
		return err
	}

	universe, err := db.CreateUniverse(ctx, models.Universe{
		Slug:     "wayfarer",
		Name:     "Wayfarer Demo Universe",
		OwnerID:  owner.ID,
		IsPublic: true,
	})
	if err != nil {
		return err
	}

	world, err := db.CreateWorld(ctx, models.World{
		UniverseID: universe.ID,
		Slug:       "welcome",
		MapURL:     "https://assets.wayfarer.app/maps/start.tmj",
	})
	if err != nil {
		return err
	}

	rooms := []models.Room{
		{
			WorldID:  world.ID,
			Slug:     "lobby",
			Name:     "Welcome Lobby",
			IsPublic: true,
			// No map_url: inherits the world default.
		},
		{
			WorldID:                 world.ID,
			Slug:                    "office",
			Name:                    "Demo Office",
			MapURL:                  "https://assets.wayfarer.app/maps/office.tmj",
			IsPublic:                false,
			AuthenticationMandatory: true,
		},
	}
	for _, r := range rooms {
		if _, err := db.CreateRoom(ctx, r); err != nil {
			return err
		}
	}

	logging.Info().
		Str("universe", universe.Slug).
		Str("world", world.Slug).
		Int("rooms", len(rooms)).
		Msg("Seeded demo directory")
	return nil
}
