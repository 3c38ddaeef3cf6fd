// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

package mapstorage

import (
	"context"
	"sync"
)

// Fake is an in-memory Client for tests. It records every call and can be
// primed to fail probes or creates, enabling deterministic simulation of
// "exists", "absent", "probe failure", and "create failure" without
// network access.
//
// Thread safety: safe for concurrent use.
type Fake struct {
	mu sync.Mutex

	// artifacts maps artifact path to the source URL it was created from.
	artifacts map[string]string

	// ExistsErr, when set, is returned by every Exists call.
	ExistsErr error

	// CreateErr, when set, is returned by every Create call.
	CreateErr error

	existsCalls []string
	createCalls []string
}

// NewFake creates an empty fake store.
func NewFake() *Fake {
	return &Fake{artifacts: make(map[string]string)}
}

// Put seeds an artifact as already materialized.
func (f *Fake) Put(path, sourceURL string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.artifacts[path] = sourceURL
}

// Exists reports whether the artifact was seeded or created.
func (f *Fake) Exists(_ context.Context, path string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.existsCalls = append(f.existsCalls, path)
	if f.ExistsErr != nil {
		return false, f.ExistsErr
	}
	_, ok := f.artifacts[path]
	return ok, nil
}

// Create materializes an artifact. Creating an existing path is harmless,
// matching the idempotency contract of the real store.
func (f *Fake) Create(_ context.Context, path, sourceURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls = append(f.createCalls, path)
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.artifacts[path] = sourceURL
	return nil
}

// SourceURL returns the source URL an artifact was created from, and
// whether the artifact exists.
func (f *Fake) SourceURL(path string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	src, ok := f.artifacts[path]
	return src, ok
}

// ExistsCalls returns the paths probed so far.
func (f *Fake) ExistsCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.existsCalls...)
}

// CreateCalls returns the paths created so far.
func (f *Fake) CreateCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.createCalls...)
}
