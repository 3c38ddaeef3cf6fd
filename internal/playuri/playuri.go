// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

// Package playuri parses opaque, hierarchical play URIs into their
// domain / universe / world / room coordinates.
//
// A play URI is typically an absolute URL whose authority encodes the
// domain and whose path segments encode the namespace hierarchy, with an
// optional leading "@" marker segment:
//
//	https://acme.example/@/spaceco/hq/lobby
//	        └ domain ┘    └universe┘└world┘└room┘
//
// Parsing never returns a Go error: the outcome is a tagged Result whose
// kind the caller branches on. A root path ("/" or empty) is a normal
// outcome that callers turn into a redirect, and a tokenizable URI that
// simply does not address a room degrades to the fallback map rather than
// failing the request.
package playuri

import (
	"fmt"
	"net/url"
	"strings"
)

// Kind discriminates the parse outcomes.
type Kind int

const (
	// KindRoom means the URI addresses a room: Location is populated.
	KindRoom Kind = iota

	// KindRoot means the path was empty or "/": no room addressed yet.
	// Callers redirect to the configured start location.
	KindRoot

	// KindNotRoom means the URI tokenized but does not carry the minimum
	// three path segments. Callers substitute the fallback descriptor.
	KindNotRoom

	// KindInvalid means the string could not be tokenized as a URI at
	// all. Callers answer an explicit client error.
	KindInvalid
)

// String returns the kind name, for logging and test output.
func (k Kind) String() string {
	switch k {
	case KindRoom:
		return "room"
	case KindRoot:
		return "root"
	case KindNotRoom:
		return "not-room"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Location is the fully addressed namespace coordinate of a room.
// Room holds everything after the universe and world segments joined with
// "/", so nested room paths survive parsing.
type Location struct {
	Domain   string
	Universe string
	World    string
	Room     string
}

// Result is the tagged outcome of Parse.
type Result struct {
	Kind     Kind
	Location Location // valid only when Kind == KindRoom
	Reason   string   // populated for KindNotRoom and KindInvalid
}

// Parse tokenizes a play URI.
func Parse(playURI string) Result {
	u, err := url.Parse(playURI)
	if err != nil {
		return Result{Kind: KindInvalid, Reason: fmt.Sprintf("not a well-formed URI: %v", err)}
	}
	if u.Host == "" {
		return Result{Kind: KindInvalid, Reason: "play URI has no authority"}
	}

	segments := splitPath(u.Path)
	if len(segments) == 0 {
		return Result{Kind: KindRoot}
	}

	// A leading "@" segment is a namespace marker, not a coordinate.
	if segments[0] == "@" {
		segments = segments[1:]
	}

	if len(segments) < 3 {
		return Result{
			Kind:   KindNotRoom,
			Reason: fmt.Sprintf("expected at least universe/world/room, got %d segment(s)", len(segments)),
		}
	}

	return Result{
		Kind: KindRoom,
		Location: Location{
			Domain:   u.Hostname(),
			Universe: segments[0],
			World:    segments[1],
			Room:     strings.Join(segments[2:], "/"),
		},
	}
}

// splitPath splits a URL path into its non-empty segments.
func splitPath(p string) []string {
	parts := strings.Split(p, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}
