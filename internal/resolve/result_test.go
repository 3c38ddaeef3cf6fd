// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

package resolve

import (
	"testing"

	"github.com/wayfarer-app/wayfarer/internal/models"
)

// The status field is the literal "error" on every structured error body;
// the type field alone distinguishes authorization failures.
func TestErrorConstructorsWireShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		res      Resolution
		wantKind Kind
		wantType string
		wantCode string
	}{
		{
			name:     "client error",
			res:      NewClientError(models.CodeInvalidPlayURI, "Invalid play URI", "not a room URL"),
			wantKind: KindClientError,
			wantType: models.ErrorTypeError,
			wantCode: models.CodeInvalidPlayURI,
		},
		{
			name:     "unauthorized",
			res:      NewUnauthorized("token rejected"),
			wantKind: KindUnauthorized,
			wantType: models.ErrorTypeUnauthorized,
			wantCode: models.CodeUnauthorized,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.res.Kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", tt.res.Kind, tt.wantKind)
			}
			if tt.res.Err == nil {
				t.Fatal("Err is nil")
			}
			if tt.res.Err.Status != "error" {
				t.Errorf("status = %q, want %q", tt.res.Err.Status, "error")
			}
			if tt.res.Err.Type != tt.wantType {
				t.Errorf("type = %q, want %q", tt.res.Err.Type, tt.wantType)
			}
			if tt.res.Err.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", tt.res.Err.Code, tt.wantCode)
			}
		})
	}
}
