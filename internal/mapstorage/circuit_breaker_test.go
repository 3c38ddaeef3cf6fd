// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

package mapstorage

import (
	"context"
	"errors"
	"testing"
)

func TestCircuitBreakerPassesThroughSuccess(t *testing.T) {
	t.Parallel()

	fake := NewFake()
	fake.Put("a/b/c/d.wam", "https://cdn.example/d.tmj")
	cbc := NewCircuitBreakerClient(fake)

	exists, err := cbc.Exists(context.Background(), "a/b/c/d.wam")
	if err != nil {
		t.Fatalf("Exists returned error: %v", err)
	}
	if !exists {
		t.Error("expected exists=true through breaker")
	}

	exists, err = cbc.Exists(context.Background(), "a/b/c/other.wam")
	if err != nil {
		t.Fatalf("Exists returned error: %v", err)
	}
	if exists {
		t.Error("expected exists=false for unseeded path")
	}
}

func TestCircuitBreakerPassesThroughCreate(t *testing.T) {
	t.Parallel()

	fake := NewFake()
	cbc := NewCircuitBreakerClient(fake)

	if err := cbc.Create(context.Background(), "a/b/c/d.wam", "https://cdn.example/d.tmj"); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if got, ok := fake.SourceURL("a/b/c/d.wam"); !ok || got != "https://cdn.example/d.tmj" {
		t.Errorf("artifact source URL = %q, ok=%v", got, ok)
	}
}

func TestCircuitBreakerOpensAfterFailures(t *testing.T) {
	t.Parallel()

	fake := NewFake()
	fake.ExistsErr = errors.New("storage exploded")
	cbc := NewCircuitBreakerClient(fake)

	// Five consecutive failures exceed the 60% trip threshold.
	for i := 0; i < 5; i++ {
		if _, err := cbc.Exists(context.Background(), "some/path.wam"); err == nil {
			t.Fatalf("call %d: expected failure", i)
		}
	}

	callsBefore := len(fake.ExistsCalls())
	_, err := cbc.Exists(context.Background(), "some/path.wam")
	if err == nil {
		t.Fatal("expected rejection from open breaker")
	}
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("open-breaker rejection should wrap ErrStorageUnavailable, got %v", err)
	}
	if calls := len(fake.ExistsCalls()); calls != callsBefore {
		t.Errorf("open breaker still reached the store: %d calls, expected %d", calls, callsBefore)
	}
}

func TestCircuitBreakerFailureErrorIsNotUnavailable(t *testing.T) {
	t.Parallel()

	fake := NewFake()
	fake.CreateErr = errors.New("upstream fetch failed")
	cbc := NewCircuitBreakerClient(fake)

	err := cbc.Create(context.Background(), "a/b/c/d.wam", "https://cdn.example/d.tmj")
	if err == nil {
		t.Fatal("expected create error")
	}
	if errors.Is(err, ErrStorageUnavailable) {
		t.Error("a plain create failure should not be reported as breaker rejection")
	}
}
