// Copyright 2025 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package storage defines the contract implemented by pluggable Cinder
// storage backends: a typed configuration schema with secret marking,
// charm metadata for the deployable unit, and translation of validated
// configuration into terraform deployment variables.
package storage

import (
	"context"
	"fmt"
	"strconv"

	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
	"github.com/juju/names/v5"
)

var logger = loggo.GetLogger("sunbeam.storage")

// CharmNamePrefix is the common prefix of every storage backend charm.
const CharmNamePrefix = "cinder-volume-"

// TerraformClient is implemented by the deployment engine that installs
// and upgrades backend charms. It is external to this package.
type TerraformClient interface {
	// RegisterPlan makes the named terraform plan available for
	// subsequent Apply and Destroy calls.
	RegisterPlan(ctx context.Context, plan string) error

	// Apply applies the named plan with the supplied variables.
	Apply(ctx context.Context, plan string, vars map[string]interface{}) error

	// Destroy destroys the named plan's resources selected by the
	// supplied variables.
	Destroy(ctx context.Context, plan string, vars map[string]interface{}) error
}

// SecretStore is implemented by the secret backing store. Secret-marked
// configuration only ever reaches the deployment engine as a reference
// returned by Put.
type SecretStore interface {
	// Put stores or updates the labelled secret content and returns a
	// reference to it.
	Put(ctx context.Context, label string, content map[string]string) (string, error)

	// Remove removes the labelled secret.
	Remove(ctx context.Context, label string) error
}

// Backend is the capability surface every storage backend implements.
// Implementations are constructed once at start-up and are immutable.
type Backend interface {
	// Type returns the backend's unique type identifier, eg
	// "dellpowerstore".
	Type() string

	// DisplayName returns the human readable backend name.
	DisplayName() string

	// CharmName returns the name of the charm realizing this backend.
	// It always carries CharmNamePrefix.
	CharmName() string

	// CharmChannel returns the channel to deploy the charm from.
	CharmChannel() string

	// CharmRevision returns the pinned charm revision, or empty when
	// unpinned.
	CharmRevision() string

	// CharmBase returns the base the charm is deployed on, eg
	// "ubuntu@24.04".
	CharmBase() string

	// ConfigSchema returns the backend's configuration schema.
	ConfigSchema() Fields

	// EndpointBindings derives the charm endpoint binding hints for the
	// deployment engine from validated configuration.
	EndpointBindings(cfg ValidatedConfig) map[string]string

	// SecretAttributes returns the secret-marked option values, keyed
	// by external key. The result is only ever handed to a SecretStore.
	SecretAttributes(cfg ValidatedConfig) map[string]string

	// TerraformVars translates validated configuration into the
	// deployment variables the terraform plan consumes. Secret-marked
	// options are never inlined; AddBackendInstance supplies them by
	// secret reference instead.
	TerraformVars(cfg ValidatedConfig) (map[string]interface{}, error)

	// RegisterTerraformPlan registers the backend's terraform plan with
	// the deployment engine.
	RegisterTerraformPlan(ctx context.Context, client TerraformClient) error

	// AddBackendInstance deploys a named instance of the backend with
	// the supplied validated configuration, storing secret options in
	// the secret store first.
	AddBackendInstance(ctx context.Context, client TerraformClient, secrets SecretStore, name string, cfg ValidatedConfig) error

	// RemoveBackend removes the named backend instance and its stored
	// secret.
	RemoveBackend(ctx context.Context, client TerraformClient, secrets SecretStore, name string) error
}

// BackendInfo declares a storage backend. Backends differ only in this
// data; validation and deployment behaviour is shared.
type BackendInfo struct {
	// BackendType is the unique type identifier.
	BackendType string

	// DisplayName is the human readable backend name.
	DisplayName string

	// CharmChannel, CharmRevision and CharmBase pin the charm version.
	// CharmRevision may be empty.
	CharmChannel  string
	CharmRevision string
	CharmBase     string

	// Bindings holds endpoint binding hints merged over the default
	// binding.
	Bindings map[string]string

	// Schema is the backend's configuration schema.
	Schema Fields
}

// NewBackend returns a Backend driven by the supplied declaration.
func NewBackend(info BackendInfo) Backend {
	return &backend{info: info}
}

type backend struct {
	info BackendInfo
}

func (b *backend) Type() string          { return b.info.BackendType }
func (b *backend) DisplayName() string   { return b.info.DisplayName }
func (b *backend) CharmChannel() string  { return b.info.CharmChannel }
func (b *backend) CharmRevision() string { return b.info.CharmRevision }
func (b *backend) CharmBase() string     { return b.info.CharmBase }
func (b *backend) ConfigSchema() Fields  { return b.info.Schema }

func (b *backend) CharmName() string {
	return CharmNamePrefix + b.info.BackendType
}

// planName is the terraform plan registered for this backend's charm.
func (b *backend) planName() string {
	return b.CharmName() + "-plan"
}

// secretLabel is the label of the credential secret for an instance.
func (b *backend) secretLabel(name string) string {
	return b.CharmName() + "-" + name
}

func (b *backend) EndpointBindings(cfg ValidatedConfig) map[string]string {
	bindings := map[string]string{"": "management"}
	for endpoint, space := range b.info.Bindings {
		bindings[endpoint] = space
	}
	return bindings
}

func (b *backend) SecretAttributes(cfg ValidatedConfig) map[string]string {
	content := make(map[string]string)
	for _, name := range b.info.Schema.SecretFields() {
		v, ok := cfg.Get(name)
		if !ok {
			continue
		}
		key := b.info.Schema.ExternalKey(name)
		switch v := v.(type) {
		case string:
			content[key] = v
		case bool:
			content[key] = strconv.FormatBool(v)
		default:
			content[key] = fmt.Sprint(v)
		}
	}
	return content
}

func (b *backend) TerraformVars(cfg ValidatedConfig) (map[string]interface{}, error) {
	options := make(map[string]interface{})
	for name, field := range b.info.Schema {
		if field.Secret {
			continue
		}
		if v, ok := cfg.Get(name); ok {
			options[b.info.Schema.ExternalKey(name)] = v
		}
	}
	vars := map[string]interface{}{
		"charm-name":    b.CharmName(),
		"charm-channel": b.info.CharmChannel,
		"charm-base":    b.info.CharmBase,
		"charm-config":  options,
	}
	if b.info.CharmRevision != "" {
		vars["charm-revision"] = b.info.CharmRevision
	}
	return vars, nil
}

func (b *backend) RegisterTerraformPlan(ctx context.Context, client TerraformClient) error {
	logger.Debugf("registering terraform plan %q", b.planName())
	return errors.Trace(client.RegisterPlan(ctx, b.planName()))
}

func (b *backend) AddBackendInstance(ctx context.Context, client TerraformClient, secrets SecretStore, name string, cfg ValidatedConfig) error {
	if !names.IsValidApplication(name) {
		return errors.NotValidf("backend instance name %q", name)
	}
	ref, err := secrets.Put(ctx, b.secretLabel(name), b.SecretAttributes(cfg))
	if err != nil {
		return errors.Trace(err)
	}
	vars, err := b.TerraformVars(cfg)
	if err != nil {
		return errors.Trace(err)
	}
	vars["name"] = name
	vars["credentials-secret"] = ref
	logger.Infof("deploying storage backend instance %q (%s)", name, b.info.BackendType)
	return errors.Trace(client.Apply(ctx, b.planName(), vars))
}

func (b *backend) RemoveBackend(ctx context.Context, client TerraformClient, secrets SecretStore, name string) error {
	logger.Infof("removing storage backend instance %q (%s)", name, b.info.BackendType)
	if err := client.Destroy(ctx, b.planName(), map[string]interface{}{"name": name}); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(secrets.Remove(ctx, b.secretLabel(name)))
}
