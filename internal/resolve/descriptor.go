// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

package resolve

import (
	"strings"

	"github.com/wayfarer-app/wayfarer/internal/models"
)

// BuildDescriptor assembles the descriptor for a resolved room from the
// coordinator's decision.
//
// Pointer precedence: when materialization yielded an artifact address,
// the descriptor carries wamUrl and omits mapUrl entirely. Only when no
// artifact is available does the raw source map appear. Editability
// requires the served pointer to live inside the managed storage
// namespace; a raw source map is never editable through this service.
func BuildDescriptor(room *models.ResolvedRoom, outcome Outcome, token string, s Settings) models.MapDescriptor {
	policy := models.PolicyPrivate
	if room.IsPublic {
		policy = models.PolicyPublic
	}

	group := room.UniverseSlug + "/" + room.WorldSlug

	d := models.MapDescriptor{
		Policy:                  policy,
		AuthenticationMandatory: room.AuthenticationMandatory,
		RoomName:                room.RoomName,
		Group:                   &group,
	}

	if outcome.WamURL != "" {
		d.WamURL = outcome.WamURL
		d.Editable = withinStorageNamespace(outcome.WamURL, s.StorageBaseURL)
	} else {
		d.MapURL = room.MapURL
	}

	// Feature modules are offered to authenticated visitors only. The
	// gate is token presence, independent of the configured auth mode.
	if token != "" && len(s.Modules) > 0 {
		d.Modules = s.Modules
		d.Metadata = &models.DescriptorMetadata{Modules: s.Modules}
	}

	if s.StaticBaseURL != "" {
		d.Metatags = buildMetatags(room, s.StaticBaseURL)
	}

	return d
}

// withinStorageNamespace reports whether the pointer addresses an
// artifact under the managed storage base.
func withinStorageNamespace(wamURL, storageBaseURL string) bool {
	if storageBaseURL == "" {
		return false
	}
	return strings.HasPrefix(wamURL, strings.TrimRight(storageBaseURL, "/")+"/")
}

// buildMetatags assembles branding metadata. The author attribution
// prefers the universe owner's display name, then their email, then a
// generic product label.
func buildMetatags(room *models.ResolvedRoom, staticBaseURL string) *models.Metatags {
	author := room.OwnerDisplayName
	if author == "" {
		author = room.OwnerEmail
	}
	if author == "" {
		author = "Wayfarer"
	}

	title := room.RoomName
	if title == "" {
		title = room.UniverseName
	}

	base := strings.TrimRight(staticBaseURL, "/")
	return &models.Metatags{
		Title:       title,
		Description: room.UniverseName,
		Favicons:    []string{base + "/favicon-32.png", base + "/favicon-16.png"},
		Author:      author,
	}
}
