// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

package resolve

import (
	"context"
	"net/url"
	"strings"

	"github.com/wayfarer-app/wayfarer/internal/logging"
	"github.com/wayfarer-app/wayfarer/internal/metrics"
	"github.com/wayfarer-app/wayfarer/internal/models"
	"github.com/wayfarer-app/wayfarer/internal/playuri"
)

// Request is one resolution request. Token, when non-empty, is the
// visitor's already-verified auth token; it gates feature modules in the
// descriptor but never affects which map is served.
type Request struct {
	PlayURI string
	Token   string
}

// Service is the resolution facade: parse, look up, materialize, build.
type Service struct {
	rooms       RoomStore
	coordinator *Coordinator
	settings    Settings
}

// NewService creates a resolution service.
func NewService(rooms RoomStore, coordinator *Coordinator, settings Settings) *Service {
	return &Service{rooms: rooms, coordinator: coordinator, settings: settings}
}

// Resolve answers a resolution request. Only an untokenizable play URI
// produces a client error; every other failure mode past that point,
// including a panic in a collaborator, degrades to the fallback
// descriptor so a visitor always lands somewhere.
func (s *Service) Resolve(ctx context.Context, req Request) (res Resolution) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error().
				Interface("panic", r).
				Str("play_uri", req.PlayURI).
				Msg("Resolution panicked, serving fallback")
			metrics.ResolutionsTotal.WithLabelValues("fallback").Inc()
			res = NewDescriptor(FallbackDescriptor(s.settings, req.Token))
		}
	}()

	parsed := playuri.Parse(req.PlayURI)
	switch parsed.Kind {
	case playuri.KindInvalid:
		metrics.ResolutionsTotal.WithLabelValues("invalid").Inc()
		return NewClientError(
			models.CodeInvalidPlayURI,
			"Invalid play URI",
			parsed.Reason,
		)

	case playuri.KindRoot:
		metrics.ResolutionsTotal.WithLabelValues("redirect").Inc()
		return NewRedirect(s.startRedirect(req.PlayURI))

	case playuri.KindNotRoom:
		logging.Debug().
			Str("play_uri", req.PlayURI).
			Str("reason", parsed.Reason).
			Msg("Play URI does not address a room, serving fallback")
		metrics.ResolutionsTotal.WithLabelValues("fallback").Inc()
		return NewDescriptor(FallbackDescriptor(s.settings, req.Token))
	}

	loc := parsed.Location
	room, err := s.rooms.ResolveRoom(ctx, loc.Universe, loc.World, loc.Room)
	if err != nil {
		logging.Error().Err(err).
			Str("universe", loc.Universe).
			Str("world", loc.World).
			Str("room", loc.Room).
			Msg("Room lookup failed, serving fallback")
		metrics.ResolutionsTotal.WithLabelValues("fallback").Inc()
		return NewDescriptor(FallbackDescriptor(s.settings, req.Token))
	}
	if room == nil {
		metrics.ResolutionsTotal.WithLabelValues("fallback").Inc()
		return NewDescriptor(FallbackDescriptor(s.settings, req.Token))
	}

	outcome := s.coordinator.Ensure(ctx, loc, room)
	metrics.ResolutionsTotal.WithLabelValues("descriptor").Inc()
	return NewDescriptor(BuildDescriptor(room, outcome, req.Token, s.settings))
}

// startRedirect resolves the configured start room against the caller's
// own domain. An absolute start URL is used verbatim; a path (with or
// without a leading slash) is anchored on the authority of the incoming
// play URI, so multi-domain deployments redirect within the caller's
// domain.
func (s *Service) startRedirect(playURI string) string {
	start := s.settings.StartRoomURL
	if start == "" {
		start = "/"
	}

	if u, err := url.Parse(start); err == nil && u.IsAbs() {
		return start
	}

	base, err := url.Parse(playURI)
	if err != nil || base.Host == "" {
		return start
	}
	if !strings.HasPrefix(start, "/") {
		start = "/" + start
	}
	scheme := base.Scheme
	if scheme == "" {
		scheme = "https"
	}
	return scheme + "://" + base.Host + start
}
