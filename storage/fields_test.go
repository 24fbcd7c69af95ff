// Copyright 2025 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package storage_test

import (
	"github.com/juju/schema"
	jujutesting "github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"
	"gopkg.in/juju/environschema.v1"

	"github.com/canonical/sunbeam-storage/storage"
)

type fieldsSuite struct {
	jujutesting.IsolationSuite
}

var _ = gc.Suite(&fieldsSuite{})

var testFields = storage.Fields{
	"san_ip": {
		Description: "management IP",
		Type:        storage.Tstring,
		Mandatory:   true,
		Secret:      true,
		ExternalKey: "san-ip",
	},
	"san_password": {
		Description: "management password",
		Type:        storage.Tstring,
		Mandatory:   true,
		Secret:      true,
		ExternalKey: "san-pass",
	},
	"protocol": {
		Description: "storage protocol",
		Type:        storage.Tstring,
		Values:      []string{"fc", "iscsi"},
	},
	"use_multipath": {
		Description: "use multipath for attachments",
		Type:        storage.Tbool,
	},
}

func (s *fieldsSuite) TestExternalKeyDefaultsToName(c *gc.C) {
	c.Assert(testFields.ExternalKey("protocol"), gc.Equals, "protocol")
	c.Assert(testFields.ExternalKey("use_multipath"), gc.Equals, "use_multipath")
}

func (s *fieldsSuite) TestExternalKeyExplicit(c *gc.C) {
	c.Assert(testFields.ExternalKey("san_ip"), gc.Equals, "san-ip")
	c.Assert(testFields.ExternalKey("san_password"), gc.Equals, "san-pass")
}

func (s *fieldsSuite) TestNamesSorted(c *gc.C) {
	c.Assert(testFields.Names(), jc.DeepEquals, []string{
		"protocol", "san_ip", "san_password", "use_multipath",
	})
}

func (s *fieldsSuite) TestSecretFields(c *gc.C) {
	c.Assert(testFields.SecretFields(), jc.DeepEquals, []string{"san_ip", "san_password"})
}

func (s *fieldsSuite) TestMandatoryFields(c *gc.C) {
	c.Assert(testFields.MandatoryFields(), jc.DeepEquals, []string{"san_ip", "san_password"})
}

func (s *fieldsSuite) TestSchemaConversion(c *gc.C) {
	fields := testFields.Schema()
	c.Assert(fields, gc.HasLen, 4)
	c.Assert(fields["san-ip"], jc.DeepEquals, environschema.Attr{
		Description: "management IP",
		Type:        environschema.Tstring,
		Mandatory:   true,
		Secret:      true,
	})
	c.Assert(fields["protocol"].Values, jc.DeepEquals, []interface{}{"fc", "iscsi"})
	c.Assert(fields["use_multipath"].Type, gc.Equals, environschema.Tbool)
}

func (s *fieldsSuite) TestDefaultsOmitOptional(c *gc.C) {
	c.Assert(testFields.Defaults(), jc.DeepEquals, schema.Defaults{
		"protocol":      schema.Omit,
		"use_multipath": schema.Omit,
	})
}
