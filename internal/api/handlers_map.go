// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

package api

import (
	"errors"
	"net/http"

	"github.com/wayfarer-app/wayfarer/internal/database"
	"github.com/wayfarer-app/wayfarer/internal/logging"
	"github.com/wayfarer-app/wayfarer/internal/models"
	"github.com/wayfarer-app/wayfarer/internal/resolve"
	"github.com/wayfarer-app/wayfarer/internal/validation"
)

// ResolveMap handles GET /api/v1/map: resolve a play URI into a map
// descriptor, a redirect, or a structured client error.
//
// Only a missing or untokenizable playUri and an invalid token produce
// error statuses. Everything else answers 200: internal failures degrade
// to the fallback descriptor inside the resolve service.
func (h *Handler) ResolveMap(w http.ResponseWriter, r *http.Request) {
	playURI := r.URL.Query().Get("playUri")
	if playURI == "" {
		respondError(w, http.StatusBadRequest,
			models.CodeMissingPlayURI, "Missing playUri parameter",
			"the playUri query parameter is required")
		return
	}

	token := bearerToken(r)
	if err := h.authorizer.Verify(token); err != nil {
		logging.Debug().
			Str("play_uri", sanitizeLogValue(playURI)).
			Err(err).
			Msg("Token verification failed")
		res := resolve.NewUnauthorized("token verification failed")
		respondJSON(w, http.StatusUnauthorized, res.Err)
		return
	}

	res := h.resolver.Resolve(r.Context(), resolve.Request{PlayURI: playURI, Token: token})
	switch res.Kind {
	case resolve.KindDescriptor:
		respondJSON(w, http.StatusOK, res.Descriptor)
	case resolve.KindRedirect:
		respondJSON(w, http.StatusOK, res.Redirect)
	case resolve.KindClientError:
		respondJSON(w, http.StatusBadRequest, res.Err)
	case resolve.KindUnauthorized:
		respondJSON(w, http.StatusUnauthorized, res.Err)
	default:
		// Unreachable; keep the visitor moving anyway.
		respondJSON(w, http.StatusOK, res.Descriptor)
	}
}

// roomLookupParams is the validated query shape for the strict lookup.
type roomLookupParams struct {
	Universe string `validate:"required,max=190"`
	World    string `validate:"required,max=190"`
	Room     string `validate:"required,max=500"`
}

// roomLookupResponse is the wire shape of a strict lookup hit.
type roomLookupResponse struct {
	ID                      string `json:"id"`
	Slug                    string `json:"slug"`
	Name                    string `json:"name"`
	MapURL                  string `json:"mapUrl,omitempty"`
	WamURL                  string `json:"wamUrl,omitempty"`
	IsPublic                bool   `json:"isPublic"`
	AuthenticationMandatory bool   `json:"authenticationMandatory"`
	World                   string `json:"world"`
	Universe                string `json:"universe"`
}

// LookupRoom handles GET /api/v1/rooms/lookup: the strict variant of
// resolution for callers that need to distinguish "no such room" from
// "degraded". Unknown rooms answer 404 instead of the fallback map.
func (h *Handler) LookupRoom(w http.ResponseWriter, r *http.Request) {
	params := roomLookupParams{
		Universe: r.URL.Query().Get("universe"),
		World:    r.URL.Query().Get("world"),
		Room:     r.URL.Query().Get("room"),
	}
	if verr := validation.ValidateStruct(params); verr != nil {
		respondJSON(w, http.StatusBadRequest, verr.ToAPIError())
		return
	}

	rr, err := h.directory.GetRoomBySlugs(r.Context(), params.Universe, params.World, params.Room)
	if err != nil {
		if errors.Is(err, database.ErrRoomNotFound) {
			respondError(w, http.StatusNotFound,
				models.CodeRoomNotFound, "Room not found",
				params.Universe+"/"+params.World+"/"+params.Room)
			return
		}
		logging.Error().Err(err).Msg("Room lookup failed")
		respondError(w, http.StatusInternalServerError,
			"LOOKUP_FAILED", "Room lookup failed", "")
		return
	}

	respondJSON(w, http.StatusOK, roomLookupResponse{
		ID:                      rr.RoomID,
		Slug:                    rr.RoomSlug,
		Name:                    rr.RoomName,
		MapURL:                  rr.MapURL,
		WamURL:                  rr.WamURL,
		IsPublic:                rr.IsPublic,
		AuthenticationMandatory: rr.AuthenticationMandatory,
		World:                   rr.WorldSlug,
		Universe:                rr.UniverseSlug,
	})
}
