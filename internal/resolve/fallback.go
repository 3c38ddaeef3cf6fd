// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

package resolve

import "github.com/wayfarer-app/wayfarer/internal/models"

// FallbackDescriptor is the always-available degradation target: the
// default start map, public, read-only, with no group attribution. An
// unknown room and a broken backing store answer with exactly this shape
// so clients cannot distinguish the two. Module gating matches resolved
// descriptors: token presence, nothing else.
func FallbackDescriptor(s Settings, token string) models.MapDescriptor {
	d := models.MapDescriptor{
		MapURL:                  s.StartMapURL,
		Editable:                false,
		AuthenticationMandatory: false,
		Policy:                  models.PolicyPublic,
		Group:                   nil,
	}
	if token != "" && len(s.Modules) > 0 {
		d.Modules = s.Modules
		d.Metadata = &models.DescriptorMetadata{Modules: s.Modules}
	}
	return d
}
