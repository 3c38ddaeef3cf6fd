// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

package models

// MapDescriptor is the externally visible description of a resolved map,
// served by GET /api/v1/map.
//
// Pointer precedence: WamURL is included and MapURL omitted whenever
// materialization produced a usable artifact pointer; MapURL is the
// fallback content source. Editable is true only when the served pointer
// is a WamURL inside the managed storage namespace, since a raw MapURL is
// always read-only from this service's perspective.
type MapDescriptor struct {
	MapURL                  string              `json:"mapUrl,omitempty"`
	WamURL                  string              `json:"wamUrl,omitempty"`
	Editable                bool                `json:"editable"`
	AuthenticationMandatory bool                `json:"authenticationMandatory"`
	Policy                  string              `json:"policy"`
	RoomName                string              `json:"roomName,omitempty"`
	Group                   *string             `json:"group"`
	Modules                 []string            `json:"modules,omitempty"`
	Metadata                *DescriptorMetadata `json:"metadata,omitempty"`
	Metatags                *Metatags           `json:"metatags,omitempty"`
}

// Policy values for MapDescriptor.Policy.
const (
	PolicyPublic  = "public"
	PolicyPrivate = "private"
)

// DescriptorMetadata carries the feature-module list for front-end
// activation.
type DescriptorMetadata struct {
	Modules []string `json:"modules"`
}

// Metatags carries branding metadata, included only when a base address
// for static assets is resolvable.
type Metatags struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Favicons    []string `json:"favicons,omitempty"`
	Author      string   `json:"author,omitempty"`
}

// RedirectResponse is served for root-path play URIs.
type RedirectResponse struct {
	RedirectURL string `json:"redirectUrl"`
}

// ErrorResponse is the structured error body served for explicit client
// and authorization errors. All other failure modes degrade to the
// fallback descriptor with HTTP 200 rather than an error code.
type ErrorResponse struct {
	Status   string `json:"status"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Code     string `json:"code"`
	Details  string `json:"details,omitempty"`
}

// ErrorResponse.Type values.
const (
	ErrorTypeError        = "error"
	ErrorTypeUnauthorized = "unauthorized"
)

// Error codes served by the map-resolution endpoints.
const (
	CodeMissingPlayURI = "MISSING_PLAY_URI"
	CodeInvalidPlayURI = "INVALID_PLAY_URI"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeRoomNotFound   = "ROOM_NOT_FOUND"
	CodeValidationErr  = "VALIDATION_ERROR"
)

// APIError is the structured validation-error payload mirrored by the
// validation package.
type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}
