// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

package mapstorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/wayfarer-app/wayfarer/internal/config"
	"github.com/wayfarer-app/wayfarer/internal/metrics"
)

// maxErrorBodySize limits how much of a failure response body is read for
// error reporting, preventing unbounded allocation on large error pages.
const maxErrorBodySize = 64 * 1024 // 64KB

// readBodyForError reads a response body for error reporting (max 64KB).
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// HTTPClient talks to the map-storage service over HTTP.
//
// Exists issues HEAD {base}/{path}; 200 means present, 404 means confirmed
// absent, anything else is a probe failure. Create issues PUT {base}/{path}
// with a JSON body naming the source content URL; the store answers 409
// when the artifact already exists, which this client treats as success
// because duplicate creates are harmless by contract.
//
// Thread safety: safe for concurrent use; each call builds its own request.
type HTTPClient struct {
	baseURL  string
	apiToken string
	client   *http.Client
}

// createRequest is the JSON body of a create call.
type createRequest struct {
	SourceURL string `json:"sourceUrl"`
}

// NewHTTPClient creates a map-storage client from the storage
// configuration. The configuration is captured at construction; a config
// change requires constructing a new client.
func NewHTTPClient(cfg config.StorageConfig) *HTTPClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL:  cfg.BaseURL,
		apiToken: cfg.APIToken,
		client:   &http.Client{Timeout: timeout},
	}
}

// Exists probes the store for an artifact at path.
func (c *HTTPClient) Exists(ctx context.Context, path string) (bool, error) {
	start := time.Now()
	exists, err := c.exists(ctx, path)
	metrics.StorageRequestDuration.WithLabelValues("exists").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.StorageRequestsTotal.WithLabelValues("exists", "failure").Inc()
		return false, err
	}
	metrics.StorageRequestsTotal.WithLabelValues("exists", "success").Inc()
	return exists, nil
}

func (c *HTTPClient) exists(ctx context.Context, path string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, ComputeURL(path, c.baseURL), http.NoBody)
	if err != nil {
		return false, fmt.Errorf("failed to create exists request: %w", err)
	}
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: exists probe: %v", ErrStorageUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck // nothing actionable on close failure

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("exists probe returned unexpected status %d", resp.StatusCode)
	}
}

// Create asks the store to materialize an artifact at path derived from
// sourceURL.
func (c *HTTPClient) Create(ctx context.Context, path, sourceURL string) error {
	start := time.Now()
	err := c.create(ctx, path, sourceURL)
	metrics.StorageRequestDuration.WithLabelValues("create").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.StorageRequestsTotal.WithLabelValues("create", "failure").Inc()
		return err
	}
	metrics.StorageRequestsTotal.WithLabelValues("create", "success").Inc()
	return nil
}

func (c *HTTPClient) create(ctx context.Context, path, sourceURL string) error {
	body, err := json.Marshal(createRequest{SourceURL: sourceURL})
	if err != nil {
		return fmt.Errorf("failed to marshal create request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, ComputeURL(path, c.baseURL), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: create: %v", ErrStorageUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck // nothing actionable on close failure

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return nil
	case http.StatusConflict:
		// Another writer got there first. The artifact exists, which is
		// all the caller needs.
		return nil
	default:
		return fmt.Errorf("create returned status %d: %s", resp.StatusCode, readBodyForError(resp.Body))
	}
}

// authorize attaches the storage API token.
func (c *HTTPClient) authorize(req *http.Request) {
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
}
