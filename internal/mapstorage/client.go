// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

// Package mapstorage provides a narrow client for the external map-storage
// service that hosts materialized map artifacts.
//
// Artifact addressing is split into two pure functions so callers can
// recompute the canonical artifact URL from current configuration on every
// request instead of trusting a stored pointer: ComputePath derives the
// deterministic artifact path from the room's namespace coordinates, and
// ComputeURL joins that path onto whatever storage base address is
// configured right now. The Client interface covers the two network-bound
// operations: a read-only existence probe and an idempotent create.
package mapstorage

import (
	"context"
	"errors"
	"strings"
)

// Client is the narrow interface to the external artifact store.
//
// Exists is a read-only probe and must not mutate state. A returned error
// means the probe itself failed (timeout, non-404 failure status, open
// circuit); callers must not treat that as "confirmed absent": a failed
// probe skips creation and the request degrades to the raw source map.
//
// Create asks the store to materialize an artifact at path wrapping
// sourceURL. The store is expected to be idempotent or to reject duplicate
// creates harmlessly, so concurrent creates of the same path are safe.
type Client interface {
	Exists(ctx context.Context, path string) (bool, error)
	Create(ctx context.Context, path, sourceURL string) error
}

// ErrStorageUnavailable wraps failures where the storage service could not
// be reached at all, including circuit-open rejections.
var ErrStorageUnavailable = errors.New("map storage unavailable")

// wamExtension is the artifact file extension in the managed namespace.
const wamExtension = ".wam"

// ComputePath derives the deterministic artifact path for a room. The
// same coordinates always yield the same path, independent of whether the
// artifact currently exists.
func ComputePath(domain, universe, world, room string) string {
	return strings.Join([]string{domain, universe, world, room}, "/") + wamExtension
}

// ComputeURL joins an artifact path onto a storage base address. It is
// re-derived on every request from the current configuration value, never
// cached, so a storage-host migration takes effect immediately.
func ComputeURL(path, storageBaseURL string) string {
	return strings.TrimRight(storageBaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}
