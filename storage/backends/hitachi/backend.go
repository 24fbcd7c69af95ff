// Copyright 2025 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package hitachi provides the Hitachi VSP storage backend.
package hitachi

import (
	"github.com/canonical/sunbeam-storage/storage"
)

// BackendType is the Hitachi backend type identifier.
const BackendType = "hitachi"

func init() {
	storage.RegisterBackend(NewBackend())
}

// NewBackend returns the Hitachi VSP storage backend. The schema mirrors
// the configuration options of the cinder-volume-hitachi charm.
func NewBackend() storage.Backend {
	return storage.NewBackend(storage.BackendInfo{
		BackendType:  BackendType,
		DisplayName:  "Hitachi VSP",
		CharmChannel: "2025.1/edge",
		CharmBase:    "ubuntu@24.04",
		Schema: storage.Fields{
			"san_ip": {
				ExternalKey: "san-ip",
				Description: "Hitachi storage array management IP or FQDN",
				Type:        storage.Tstring,
				Mandatory:   true,
				Secret:      true,
				IPOrFQDN:    true,
			},
			"san_username": {
				ExternalKey: "san-username",
				Description: "Hitachi storage array management username",
				Type:        storage.Tstring,
				Mandatory:   true,
				Secret:      true,
			},
			"san_password": {
				ExternalKey: "san-password",
				Description: "Hitachi storage array management password",
				Type:        storage.Tstring,
				Mandatory:   true,
				Secret:      true,
			},
			"hitachi_storage_id": {
				Description: "Product number of the storage system",
				Type:        storage.Tstring,
				Mandatory:   true,
			},
			"hitachi_pools": {
				Description: "Comma separated list of pool names or IDs for volumes",
				Type:        storage.Tstring,
				Mandatory:   true,
			},
			"hitachi_target_ports": {
				Description: "Comma separated list of controller ports used to attach volumes",
				Type:        storage.Tstring,
			},
			"protocol": {
				Description: "Storage protocol (fc or iscsi)",
				Type:        storage.Tstring,
				Values:      []string{"fc", "iscsi"},
			},
			"volume_backend_name": {
				Description: "Name that Cinder will report for this backend",
				Type:        storage.Tstring,
			},
			"backend_availability_zone": {
				Description: "Availability zone to associate with this backend",
				Type:        storage.Tstring,
			},
		},
	})
}
