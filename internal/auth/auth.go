// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

// Package auth verifies visitor tokens presented on resolution requests.
//
// An absent token is always acceptable: anonymous visitors resolve maps
// like everyone else, they just don't receive feature modules. Only a
// token that is present but fails verification is rejected.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wayfarer-app/wayfarer/internal/config"
)

// ErrInvalidToken is returned when a presented token fails verification.
var ErrInvalidToken = errors.New("invalid token")

// Claims represents visitor token claims.
type Claims struct {
	Username string   `json:"username"`
	Tags     []string `json:"tags,omitempty"`
	jwt.RegisteredClaims
}

// Authorizer verifies a presented token. Implementations must accept the
// empty token as anonymous.
type Authorizer interface {
	// Verify returns nil for an acceptable token and a wrapped
	// ErrInvalidToken for a rejected one.
	Verify(token string) error
}

// AllowAll accepts every token. Used when auth_mode is "none".
type AllowAll struct{}

// Verify always succeeds.
func (AllowAll) Verify(string) error { return nil }

// JWTAuthorizer verifies HMAC-SHA256 signed tokens.
type JWTAuthorizer struct {
	secret []byte
}

// NewJWTAuthorizer creates a JWT authorizer from the security config.
func NewJWTAuthorizer(cfg *config.SecurityConfig) (*JWTAuthorizer, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required in jwt auth mode")
	}
	return &JWTAuthorizer{secret: []byte(cfg.JWTSecret)}, nil
}

// Verify checks the token signature and registered claims. An empty
// token passes: anonymity is not an authorization failure.
func (a *JWTAuthorizer) Verify(tokenString string) error {
	if tokenString == "" {
		return nil
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if _, ok := token.Claims.(*Claims); !ok || !token.Valid {
		return fmt.Errorf("%w: invalid claims", ErrInvalidToken)
	}
	return nil
}

// GenerateToken creates a signed visitor token. Exposed for tests and
// for operators minting tokens out of band.
func (a *JWTAuthorizer) GenerateToken(username string, tags []string, ttl time.Duration) (string, error) {
	claims := &Claims{
		Username: username,
		Tags:     tags,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// FromConfig selects the authorizer for the configured auth mode.
func FromConfig(cfg *config.SecurityConfig) (Authorizer, error) {
	switch cfg.AuthMode {
	case "jwt":
		return NewJWTAuthorizer(cfg)
	default:
		return AllowAll{}, nil
	}
}
