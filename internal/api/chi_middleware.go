// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

package api

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/wayfarer-app/wayfarer/internal/config"
	"github.com/wayfarer-app/wayfarer/internal/models"
)

// corsMiddleware builds the CORS policy from configuration. An empty
// origin list allows all origins: the map endpoint is consumed by game
// clients served from arbitrary player domains.
func corsMiddleware(cfg *config.SecurityConfig) func(http.Handler) http.Handler {
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}

// rateLimitMiddleware limits requests per client IP. Disabled entirely
// when the operator opts out.
func rateLimitMiddleware(cfg *config.SecurityConfig) func(http.Handler) http.Handler {
	if cfg.RateLimitDisabled {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		cfg.RateLimitReqs,
		cfg.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			respondError(w, http.StatusTooManyRequests,
				"RATE_LIMITED", "Too many requests", "slow down and retry")
		}),
	)
}

// requireAuth gates a route group on a verifiable token. In jwt mode the
// token must be present; in none mode everything passes.
func (router *Router) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if router.cfg.Security.AuthMode == "jwt" && token == "" {
			respondError(w, http.StatusUnauthorized,
				models.CodeUnauthorized, "Unauthorized", "a bearer token is required")
			return
		}
		if err := router.handler.authorizer.Verify(token); err != nil {
			respondError(w, http.StatusUnauthorized,
				models.CodeUnauthorized, "Unauthorized", "token verification failed")
			return
		}
		next.ServeHTTP(w, r)
	})
}
