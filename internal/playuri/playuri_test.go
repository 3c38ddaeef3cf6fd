// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

package playuri

import "testing"

func TestParseRoomURIs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Location
	}{
		{
			name:  "standard room URI with marker",
			input: "https://acme.example/@/spaceco/hq/lobby",
			expected: Location{
				Domain:   "acme.example",
				Universe: "spaceco",
				World:    "hq",
				Room:     "lobby",
			},
		},
		{
			name:  "room URI without marker",
			input: "https://acme.example/spaceco/hq/lobby",
			expected: Location{
				Domain:   "acme.example",
				Universe: "spaceco",
				World:    "hq",
				Room:     "lobby",
			},
		},
		{
			name:  "nested room path joins remaining segments",
			input: "https://acme.example/@/spaceco/hq/floor2/meeting-room",
			expected: Location{
				Domain:   "acme.example",
				Universe: "spaceco",
				World:    "hq",
				Room:     "floor2/meeting-room",
			},
		},
		{
			name:  "port stripped from domain",
			input: "http://localhost:8080/@/dev/sandbox/test",
			expected: Location{
				Domain:   "localhost",
				Universe: "dev",
				World:    "sandbox",
				Room:     "test",
			},
		},
		{
			name:  "trailing slash ignored",
			input: "https://acme.example/@/spaceco/hq/lobby/",
			expected: Location{
				Domain:   "acme.example",
				Universe: "spaceco",
				World:    "hq",
				Room:     "lobby",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := Parse(tt.input)
			if result.Kind != KindRoom {
				t.Fatalf("Parse(%q).Kind = %v, want room (reason: %s)", tt.input, result.Kind, result.Reason)
			}
			if result.Location != tt.expected {
				t.Errorf("Parse(%q).Location = %+v, want %+v", tt.input, result.Location, tt.expected)
			}
		})
	}
}

func TestParseRootPath(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"https://acme.example",
		"https://acme.example/",
	} {
		result := Parse(input)
		if result.Kind != KindRoot {
			t.Errorf("Parse(%q).Kind = %v, want root", input, result.Kind)
		}
	}
}

func TestParseNotRoom(t *testing.T) {
	t.Parallel()

	tests := []string{
		"https://acme.example/@/spaceco",
		"https://acme.example/@/spaceco/hq",
		"https://acme.example/about",
		"https://acme.example/@",
	}

	for _, input := range tests {
		result := Parse(input)
		if result.Kind != KindNotRoom {
			t.Errorf("Parse(%q).Kind = %v, want not-room", input, result.Kind)
		}
		if result.Reason == "" {
			t.Errorf("Parse(%q) expected a reason for not-room outcome", input)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	tests := []string{
		"://missing-scheme",
		"/@/spaceco/hq/lobby", // no authority
		"not a uri at all",
		"",
	}

	for _, input := range tests {
		result := Parse(input)
		if result.Kind != KindInvalid {
			t.Errorf("Parse(%q).Kind = %v, want invalid", input, result.Kind)
		}
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindRoom, "room"},
		{KindRoot, "root"},
		{KindNotRoom, "not-room"},
		{KindInvalid, "invalid"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}
