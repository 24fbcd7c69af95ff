// Copyright 2025 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package storage

import (
	"strings"

	"github.com/juju/collections/set"
	"github.com/juju/errors"
)

// Registry provides methods for registering and obtaining storage
// backends by backend type.
type Registry interface {
	// Register adds a backend. It fails if the backend type or charm
	// name collides with an already registered backend.
	Register(backend Backend) error

	// Get returns the backend with the given type.
	Get(backendType string) (Backend, error)

	// All returns every registered backend, in registration order.
	All() []Backend

	// Types returns the registered backend types, sorted.
	Types() []string
}

// NewRegistry returns an empty backend registry.
func NewRegistry() Registry {
	return &backendRegistry{
		backends:   make(map[string]Backend),
		charmNames: set.NewStrings(),
	}
}

type backendRegistry struct {
	// backends maps from backend type to the registered backend.
	backends   map[string]Backend
	charmNames set.Strings
	order      []string
}

var globalRegistry = NewRegistry().(*backendRegistry)

// GlobalRegistry returns the global backend registry.
func GlobalRegistry() Registry {
	return globalRegistry
}

func (r *backendRegistry) Register(backend Backend) error {
	backendType := backend.Type()
	if backendType == "" {
		return errors.NotValidf("backend with empty type")
	}
	if _, ok := r.backends[backendType]; ok {
		return errors.WithType(
			errors.Errorf("storage backend type %q already registered", backendType),
			DuplicateBackendType,
		)
	}
	charmName := backend.CharmName()
	if !strings.HasPrefix(charmName, CharmNamePrefix) {
		return errors.NotValidf("charm name %q for backend %q", charmName, backendType)
	}
	if r.charmNames.Contains(charmName) {
		return errors.WithType(
			errors.Errorf("charm name %q already registered", charmName),
			DuplicateCharmName,
		)
	}
	r.backends[backendType] = backend
	r.charmNames.Add(charmName)
	r.order = append(r.order, backendType)
	logger.Debugf("registered storage backend %q (%s)", backendType, charmName)
	return nil
}

func (r *backendRegistry) Get(backendType string) (Backend, error) {
	backend, ok := r.backends[backendType]
	if !ok {
		return nil, errors.WithType(
			errors.Errorf("no registered storage backend for %q", backendType),
			BackendNotFound,
		)
	}
	return backend, nil
}

func (r *backendRegistry) All() []Backend {
	all := make([]Backend, len(r.order))
	for i, backendType := range r.order {
		all[i] = r.backends[backendType]
	}
	return all
}

func (r *backendRegistry) Types() []string {
	types := set.NewStrings()
	for backendType := range r.backends {
		types.Add(backendType)
	}
	return types.SortedValues()
}

// RegisterBackend registers a backend with the global registry. It
// panics on a registry invariant violation: the process must not start
// with a broken registry.
func RegisterBackend(backend Backend) {
	if err := GlobalRegistry().Register(backend); err != nil {
		panic(errors.Annotate(err, "registering storage backend"))
	}
}
