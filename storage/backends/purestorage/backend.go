// Copyright 2025 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package purestorage provides the Pure Storage FlashArray backend.
package purestorage

import (
	"github.com/canonical/sunbeam-storage/storage"
)

// BackendType is the Pure Storage backend type identifier.
const BackendType = "purestorage"

func init() {
	storage.RegisterBackend(NewBackend())
}

// NewBackend returns the Pure Storage FlashArray backend. FlashArray
// authenticates with an API token rather than a username and password.
// The schema mirrors the configuration options of the
// cinder-volume-purestorage charm.
func NewBackend() storage.Backend {
	return storage.NewBackend(storage.BackendInfo{
		BackendType:  BackendType,
		DisplayName:  "Pure Storage FlashArray",
		CharmChannel: "2025.1/edge",
		CharmBase:    "ubuntu@24.04",
		Schema: storage.Fields{
			"san_ip": {
				ExternalKey: "san-ip",
				Description: "FlashArray management IP or FQDN",
				Type:        storage.Tstring,
				Mandatory:   true,
				Secret:      true,
				IPOrFQDN:    true,
			},
			"pure_api_token": {
				Description: "REST API token for the FlashArray",
				Type:        storage.Tstring,
				Mandatory:   true,
				Secret:      true,
			},
			"protocol": {
				Description: "Storage protocol (fc, iscsi or nvme-tcp)",
				Type:        storage.Tstring,
				Values:      []string{"fc", "iscsi", "nvme-tcp"},
			},
			"pure_eradicate_on_delete": {
				Description: "Eradicate volumes on delete instead of leaving them in the destroyed state",
				Type:        storage.Tbool,
			},
			"volume_backend_name": {
				Description: "Name that Cinder will report for this backend",
				Type:        storage.Tstring,
			},
			"backend_availability_zone": {
				Description: "Availability zone to associate with this backend",
				Type:        storage.Tstring,
			},
			"driver_ssl_cert": {
				Description: "SSL certificate content in PEM format",
				Type:        storage.Tstring,
			},
		},
	})
}
