// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

package resolve

import (
	"reflect"
	"testing"
)

func TestBuildDescriptorGroupAndPolicy(t *testing.T) {
	t.Parallel()

	room := lobbyRoom()
	room.IsPublic = false
	room.AuthenticationMandatory = true

	d := BuildDescriptor(&room, Outcome{State: StateUnconfigured}, "", testSettings())
	if d.Policy != "private" {
		t.Errorf("policy = %q", d.Policy)
	}
	if !d.AuthenticationMandatory {
		t.Error("authenticationMandatory not carried over")
	}
	if d.Group == nil || *d.Group != "acme/hq" {
		t.Errorf("group = %v, want acme/hq", d.Group)
	}
	if d.RoomName != "Lobby" {
		t.Errorf("roomName = %q", d.RoomName)
	}
}

func TestBuildDescriptorModulesGatedOnToken(t *testing.T) {
	t.Parallel()

	room := lobbyRoom()
	settings := testSettings()

	anon := BuildDescriptor(&room, Outcome{State: StateUnconfigured}, "", settings)
	if anon.Modules != nil || anon.Metadata != nil {
		t.Errorf("anonymous visitor got modules: %v / %v", anon.Modules, anon.Metadata)
	}

	authed := BuildDescriptor(&room, Outcome{State: StateUnconfigured}, "some-token", settings)
	if !reflect.DeepEqual(authed.Modules, settings.Modules) {
		t.Errorf("modules = %v, want %v", authed.Modules, settings.Modules)
	}
	if authed.Metadata == nil || !reflect.DeepEqual(authed.Metadata.Modules, settings.Modules) {
		t.Errorf("metadata = %+v", authed.Metadata)
	}
}

func TestBuildDescriptorEditableRequiresStorageNamespace(t *testing.T) {
	t.Parallel()

	room := lobbyRoom()
	settings := testSettings()

	inside := BuildDescriptor(&room, Outcome{State: StateExists, WamURL: "https://storage.test/a/b/c.wam"}, "", settings)
	if !inside.Editable {
		t.Error("artifact inside storage namespace should be editable")
	}

	outside := BuildDescriptor(&room, Outcome{State: StateExists, WamURL: "https://elsewhere.test/a/b/c.wam"}, "", settings)
	if outside.Editable {
		t.Error("pointer outside storage namespace must not be editable")
	}
}

func TestBuildDescriptorMetatags(t *testing.T) {
	t.Parallel()

	room := lobbyRoom()

	// No static base, no metatags.
	bare := BuildDescriptor(&room, Outcome{State: StateUnconfigured}, "", testSettings())
	if bare.Metatags != nil {
		t.Errorf("metatags without static base: %+v", bare.Metatags)
	}

	settings := testSettings()
	settings.StaticBaseURL = "https://static.test/"
	branded := BuildDescriptor(&room, Outcome{State: StateUnconfigured}, "", settings)
	if branded.Metatags == nil {
		t.Fatal("expected metatags with static base configured")
	}
	if branded.Metatags.Title != "Lobby" {
		t.Errorf("title = %q", branded.Metatags.Title)
	}
	if branded.Metatags.Author != "Owner" {
		t.Errorf("author = %q", branded.Metatags.Author)
	}
	for _, f := range branded.Metatags.Favicons {
		if f == "" || f[:len("https://static.test/")] != "https://static.test/" {
			t.Errorf("favicon %q not under static base", f)
		}
	}
}

func TestBuildDescriptorAuthorFallbackChain(t *testing.T) {
	t.Parallel()

	settings := testSettings()
	settings.StaticBaseURL = "https://static.test"

	room := lobbyRoom()
	room.OwnerDisplayName = ""
	room.OwnerEmail = "owner@test.example"
	d := BuildDescriptor(&room, Outcome{State: StateUnconfigured}, "", settings)
	if d.Metatags.Author != "owner@test.example" {
		t.Errorf("author = %q, want email fallback", d.Metatags.Author)
	}

	room.OwnerEmail = ""
	d = BuildDescriptor(&room, Outcome{State: StateUnconfigured}, "", settings)
	if d.Metatags.Author != "Wayfarer" {
		t.Errorf("author = %q, want generic label", d.Metatags.Author)
	}
}

func TestFallbackDescriptorShape(t *testing.T) {
	t.Parallel()

	settings := testSettings()
	d := FallbackDescriptor(settings, "")
	if d.MapURL != settings.StartMapURL {
		t.Errorf("mapUrl = %q", d.MapURL)
	}
	if d.WamURL != "" || d.Editable || d.AuthenticationMandatory {
		t.Errorf("fallback must be a read-only raw map: %+v", d)
	}
	if d.Policy != "public" {
		t.Errorf("policy = %q", d.Policy)
	}
	if d.Group != nil {
		t.Errorf("group = %v, want null", *d.Group)
	}
	if d.Modules != nil {
		t.Errorf("anonymous fallback got modules: %v", d.Modules)
	}

	authed := FallbackDescriptor(settings, "some-token")
	if !reflect.DeepEqual(authed.Modules, settings.Modules) {
		t.Errorf("authenticated fallback modules = %v, want %v", authed.Modules, settings.Modules)
	}
}
