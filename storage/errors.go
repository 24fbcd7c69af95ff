// Copyright 2025 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package storage

import (
	"strings"

	"github.com/juju/errors"
)

const (
	// MissingRequiredField is returned when a mandatory configuration
	// option is absent from the raw input.
	MissingRequiredField = errors.ConstError("missing required field")

	// InvalidFieldValue is returned when a configuration option is
	// present but has the wrong type or is outside its allowed values.
	InvalidFieldValue = errors.ConstError("invalid field value")

	// DuplicateBackendType is returned when registering a backend whose
	// type identifier is already taken.
	DuplicateBackendType = errors.ConstError("duplicate backend type")

	// DuplicateCharmName is returned when registering a backend whose
	// charm name is already taken.
	DuplicateCharmName = errors.ConstError("duplicate charm name")

	// BackendNotFound is returned when looking up an unregistered
	// backend type.
	BackendNotFound = errors.ConstError("backend not found")
)

// ValidationError holds every problem found in a single validation pass
// over raw configuration, so callers can report them all at once rather
// than fixing one field at a time. Each problem carries its category
// (MissingRequiredField or InvalidFieldValue) and names the offending
// field in its message.
type ValidationError struct {
	Problems []error
}

// Error implements error.
func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	return "invalid storage backend configuration: " + strings.Join(msgs, "; ")
}

// Unwrap exposes the individual field problems so errors.Is can match
// their categories.
func (e *ValidationError) Unwrap() []error {
	return e.Problems
}
