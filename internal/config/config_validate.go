// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

package config

import (
	"fmt"

	"github.com/wayfarer-app/wayfarer/internal/validation"
)

// validateStruct runs struct-tag validation over the whole config tree.
func validateStruct(c *Config) error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return fmt.Errorf("invalid configuration: %s", verr.Error())
	}
	return nil
}
