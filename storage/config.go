// Copyright 2025 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package storage

// ValidatedConfig holds typed configuration produced by Fields.Validate.
// Attributes are keyed by internal field name. The zero value is an
// empty configuration.
type ValidatedConfig struct {
	attrs map[string]interface{}
}

// Attributes returns a copy of all set attributes.
func (c ValidatedConfig) Attributes() map[string]interface{} {
	if c.attrs == nil {
		return nil
	}
	out := make(map[string]interface{}, len(c.attrs))
	for k, v := range c.attrs {
		out[k] = v
	}
	return out
}

// Has reports whether the named field was supplied.
func (c ValidatedConfig) Has(name string) bool {
	_, ok := c.attrs[name]
	return ok
}

// Get returns the named attribute and whether it was supplied.
func (c ValidatedConfig) Get(name string) (interface{}, bool) {
	v, ok := c.attrs[name]
	return v, ok
}

// GetString returns the named string attribute, or empty if unset.
func (c ValidatedConfig) GetString(name string) string {
	v, _ := c.attrs[name].(string)
	return v
}

// GetBool returns the named bool attribute, or false if unset.
func (c ValidatedConfig) GetBool(name string) bool {
	v, _ := c.attrs[name].(bool)
	return v
}
