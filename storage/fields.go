// Copyright 2025 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package storage

import (
	"github.com/juju/naturalsort"
	"github.com/juju/schema"
	"gopkg.in/juju/environschema.v1"
)

// FieldType describes the value type of a configuration field.
type FieldType string

const (
	// Tstring fields hold string values, optionally constrained to a
	// fixed set via Field.Values.
	Tstring FieldType = "string"

	// Tbool fields hold boolean values. Only typed booleans are
	// accepted; the strings "true" and "false" are not coerced.
	Tbool FieldType = "bool"
)

// Field describes a single configuration option of a storage backend.
type Field struct {
	// Description documents the option for help output.
	Description string

	// Type is the value type of the option.
	Type FieldType

	// Mandatory marks options that must be present in raw input.
	Mandatory bool

	// Secret marks options whose values must only travel through the
	// secret store, never inline configuration or logs.
	Secret bool

	// Values, when non-empty, restricts a Tstring field to the listed
	// values.
	Values []string

	// ExternalKey is the charm option name used in raw input and
	// deployment variables, for fields whose wire name differs from
	// the internal one (eg internal san_ip, wire san-ip). When empty
	// the internal field name is used on the wire.
	ExternalKey string

	// IPOrFQDN requires the value to be an IP address or a valid
	// fully-qualified domain name.
	IPOrFQDN bool
}

// Fields holds a backend's configuration schema, keyed by internal
// (underscored) field name.
type Fields map[string]Field

// ExternalKey returns the wire key for the named field: the field's
// explicit ExternalKey if set, otherwise the internal name.
func (f Fields) ExternalKey(name string) string {
	if field, ok := f[name]; ok && field.ExternalKey != "" {
		return field.ExternalKey
	}
	return name
}

// Names returns all field names in a stable order.
func (f Fields) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	naturalsort.Sort(names)
	return names
}

// SecretFields returns the names of all secret-marked fields, in a
// stable order.
func (f Fields) SecretFields() []string {
	var names []string
	for name, field := range f {
		if field.Secret {
			names = append(names, name)
		}
	}
	naturalsort.Sort(names)
	return names
}

// MandatoryFields returns the names of all mandatory fields, in a
// stable order.
func (f Fields) MandatoryFields() []string {
	var names []string
	for name, field := range f {
		if field.Mandatory {
			names = append(names, name)
		}
	}
	naturalsort.Sort(names)
	return names
}

// Schema returns the equivalent environschema fields, keyed by external
// key, for rendering help and documentation with the standard tooling.
func (f Fields) Schema() environschema.Fields {
	out := make(environschema.Fields)
	for name, field := range f {
		attr := environschema.Attr{
			Description: field.Description,
			Mandatory:   field.Mandatory,
			Secret:      field.Secret,
		}
		switch field.Type {
		case Tbool:
			attr.Type = environschema.Tbool
		default:
			attr.Type = environschema.Tstring
		}
		for _, v := range field.Values {
			attr.Values = append(attr.Values, v)
		}
		out[f.ExternalKey(name)] = attr
	}
	return out
}

// Defaults returns the schema defaults for the fields. Optional fields
// are omitted rather than defaulted; this system has no non-empty
// defaults.
func (f Fields) Defaults() schema.Defaults {
	defaults := make(schema.Defaults)
	for name, field := range f {
		if !field.Mandatory {
			defaults[f.ExternalKey(name)] = schema.Omit
		}
	}
	return defaults
}
