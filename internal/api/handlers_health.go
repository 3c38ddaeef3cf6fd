// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/wayfarer-app/wayfarer/internal/logging"
)

type healthResponse struct {
	Status string `json:"status"`
}

// HealthLive reports process liveness. It never touches dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// HealthReady reports readiness: the room directory must answer a ping.
// The external map store is deliberately not part of readiness, since
// resolution degrades gracefully without it.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.directory.Ping(ctx); err != nil {
		logging.Warn().Err(err).Msg("Readiness check failed")
		respondJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}
	respondJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
