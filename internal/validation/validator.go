// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

// Package validation provides struct validation using
// go-playground/validator v10 behind a thread-safe singleton instance.
// Validation failures translate to the VALIDATION_ERROR shape used at the
// HTTP boundary.
//
//	type LookupRequest struct {
//	    Universe string `validate:"required,max=128"`
//	}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    ...
//	}
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/wayfarer-app/wayfarer/internal/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// instance returns the singleton validator, creating it on first use.
// The singleton caches struct metadata, so reuse is significantly cheaper
// than constructing a validator per call.
func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// FieldError is a single field validation failure.
type FieldError struct {
	Field   string
	Tag     string
	Param   string
	Message string
}

// Error returns the human-readable message for the failure.
func (e FieldError) Error() string {
	return e.Message
}

// RequestValidationError aggregates all field failures for one struct.
type RequestValidationError struct {
	fieldErrors []FieldError
}

// Errors returns the individual field failures.
func (ve *RequestValidationError) Errors() []FieldError {
	return ve.fieldErrors
}

// Error implements the error interface with a summary of all failures.
func (ve *RequestValidationError) Error() string {
	msgs := make([]string, 0, len(ve.fieldErrors))
	for _, fe := range ve.fieldErrors {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// ToAPIError converts the validation failures into the structured
// VALIDATION_ERROR payload served at the HTTP boundary.
func (ve *RequestValidationError) ToAPIError() *models.APIError {
	details := make(map[string]string, len(ve.fieldErrors))
	for _, fe := range ve.fieldErrors {
		details[fe.Field] = fe.Message
	}
	return &models.APIError{
		Code:    models.CodeValidationErr,
		Message: ve.Error(),
		Details: details,
	}
}

// ValidateStruct validates v and returns nil on success, or a
// RequestValidationError describing every failed field.
func ValidateStruct(v interface{}) *RequestValidationError {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError: v was not a struct. Programming error,
		// surfaced as a single synthetic field failure.
		return &RequestValidationError{fieldErrors: []FieldError{{
			Field:   "",
			Message: err.Error(),
		}}}
	}

	fieldErrors := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: messageFor(fe),
		})
	}
	return &RequestValidationError{fieldErrors: fieldErrors}
}

// messageFor builds a human-readable message for a field failure.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
