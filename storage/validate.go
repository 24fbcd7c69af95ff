// Copyright 2025 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package storage

import (
	"net"
	"regexp"
	"strings"

	"github.com/juju/collections/set"
	"github.com/juju/errors"
)

var fqdnLabel = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)

// ValidateIPOrFQDN checks that value is an IP address or a valid
// fully-qualified domain name.
func ValidateIPOrFQDN(value string) error {
	if net.ParseIP(value) != nil {
		return nil
	}
	host := strings.TrimSuffix(value, ".")
	if host == "" || len(host) > 253 {
		return errors.Errorf("%q is not an IP address or FQDN", value)
	}
	for _, label := range strings.Split(host, ".") {
		if !fqdnLabel.MatchString(label) {
			return errors.Errorf("%q is not an IP address or FQDN", value)
		}
	}
	return nil
}

// Validate checks raw configuration, keyed by external key, against the
// schema and returns the typed result. All problems found in the pass
// are aggregated into a single *ValidationError; validation does not
// stop at the first failure. Keys not declared in the schema are
// ignored. Absent optional fields are left unset.
func (f Fields) Validate(raw map[string]interface{}) (ValidatedConfig, error) {
	attrs := make(map[string]interface{})
	var problems []error
	for _, name := range f.Names() {
		field := f[name]
		value, ok := raw[f.ExternalKey(name)]
		if !ok {
			if field.Mandatory {
				problems = append(problems, errors.WithType(
					errors.Errorf("%s: required option %q not supplied", name, f.ExternalKey(name)),
					MissingRequiredField,
				))
			}
			continue
		}
		coerced, err := field.coerce(name, value)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		attrs[name] = coerced
	}
	if len(problems) > 0 {
		return ValidatedConfig{}, &ValidationError{Problems: problems}
	}
	return ValidatedConfig{attrs: attrs}, nil
}

// coerce checks a single supplied value against the field definition.
func (f Field) coerce(name string, value interface{}) (interface{}, error) {
	invalid := func(format string, args ...interface{}) error {
		return errors.WithType(errors.Errorf(format, args...), InvalidFieldValue)
	}
	switch f.Type {
	case Tbool:
		b, ok := value.(bool)
		if !ok {
			return nil, invalid("%s: expected bool, got %v (%T)", name, value, value)
		}
		return b, nil
	case Tstring:
		s, ok := value.(string)
		if !ok {
			return nil, invalid("%s: expected string, got %v (%T)", name, value, value)
		}
		if len(f.Values) > 0 && !set.NewStrings(f.Values...).Contains(s) {
			return nil, invalid("%s: %q not one of %s", name, s, strings.Join(f.Values, ", "))
		}
		if f.IPOrFQDN {
			if err := ValidateIPOrFQDN(s); err != nil {
				return nil, invalid("%s: %v", name, err)
			}
		}
		return s, nil
	}
	return nil, invalid("%s: unsupported field type %q", name, f.Type)
}
