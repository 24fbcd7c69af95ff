// Copyright 2025 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package storage_test

import (
	"github.com/juju/errors"
	jujutesting "github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/canonical/sunbeam-storage/storage"
)

type registrySuite struct {
	jujutesting.IsolationSuite
}

var _ = gc.Suite(&registrySuite{})

func newTestBackend(backendType string) storage.Backend {
	return storage.NewBackend(storage.BackendInfo{
		BackendType:  backendType,
		DisplayName:  "Test " + backendType,
		CharmChannel: "2025.1/edge",
		CharmBase:    "ubuntu@24.04",
		Schema:       sanFields,
	})
}

// charmNameBackend overrides the derived charm name, to exercise the
// charm name uniqueness invariant independently of backend type.
type charmNameBackend struct {
	storage.Backend
	charmName string
}

func (b *charmNameBackend) CharmName() string {
	return b.charmName
}

func (s *registrySuite) TestRegisterAndGet(c *gc.C) {
	r := storage.NewRegistry()
	backend := newTestBackend("dellpowerstore")
	c.Assert(r.Register(backend), jc.ErrorIsNil)

	got, err := r.Get("dellpowerstore")
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(got, gc.Equals, backend)
}

func (s *registrySuite) TestGetNotFound(c *gc.C) {
	r := storage.NewRegistry()
	_, err := r.Get("unknown")
	c.Assert(err, jc.ErrorIs, storage.BackendNotFound)
	c.Assert(err, gc.ErrorMatches, `no registered storage backend for "unknown"`)
}

func (s *registrySuite) TestDuplicateBackendType(c *gc.C) {
	r := storage.NewRegistry()
	c.Assert(r.Register(newTestBackend("dellpowerstore")), jc.ErrorIsNil)
	err := r.Register(newTestBackend("dellpowerstore"))
	c.Assert(err, jc.ErrorIs, storage.DuplicateBackendType)
	c.Assert(err, gc.ErrorMatches, `storage backend type "dellpowerstore" already registered`)
}

func (s *registrySuite) TestDuplicateCharmName(c *gc.C) {
	r := storage.NewRegistry()
	c.Assert(r.Register(newTestBackend("hitachi")), jc.ErrorIsNil)
	err := r.Register(&charmNameBackend{
		Backend:   newTestBackend("hitachi2"),
		charmName: "cinder-volume-hitachi",
	})
	c.Assert(err, jc.ErrorIs, storage.DuplicateCharmName)
	c.Assert(err, gc.ErrorMatches, `charm name "cinder-volume-hitachi" already registered`)
}

func (s *registrySuite) TestEmptyTypeRejected(c *gc.C) {
	r := storage.NewRegistry()
	err := r.Register(newTestBackend(""))
	c.Assert(err, jc.ErrorIs, errors.NotValid)
}

func (s *registrySuite) TestCharmNamePrefixEnforced(c *gc.C) {
	r := storage.NewRegistry()
	err := r.Register(&charmNameBackend{
		Backend:   newTestBackend("hitachi"),
		charmName: "storage-hitachi",
	})
	c.Assert(err, gc.ErrorMatches, `charm name "storage-hitachi" for backend "hitachi" not valid`)
}

func (s *registrySuite) TestAllRegistrationOrder(c *gc.C) {
	r := storage.NewRegistry()
	first := newTestBackend("purestorage")
	second := newTestBackend("dellsc")
	c.Assert(r.Register(first), jc.ErrorIsNil)
	c.Assert(r.Register(second), jc.ErrorIsNil)
	c.Assert(r.All(), jc.DeepEquals, []storage.Backend{first, second})
}

func (s *registrySuite) TestTypesSorted(c *gc.C) {
	r := storage.NewRegistry()
	c.Assert(r.Register(newTestBackend("purestorage")), jc.ErrorIsNil)
	c.Assert(r.Register(newTestBackend("dellsc")), jc.ErrorIsNil)
	c.Assert(r.Types(), jc.DeepEquals, []string{"dellsc", "purestorage"})
}

func (s *registrySuite) TestRegisterBackendPanicsOnDuplicate(c *gc.C) {
	backend := newTestBackend("registry-test-backend")
	storage.RegisterBackend(backend)
	c.Assert(func() { storage.RegisterBackend(backend) }, gc.PanicMatches,
		`registering storage backend: storage backend type "registry-test-backend" already registered`)
}
