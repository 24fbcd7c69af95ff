// Copyright 2025 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package dellpowerstore provides the Dell PowerStore storage backend.
package dellpowerstore

import (
	"github.com/canonical/sunbeam-storage/storage"
)

// BackendType is the Dell PowerStore backend type identifier.
const BackendType = "dellpowerstore"

func init() {
	storage.RegisterBackend(NewBackend())
}

// NewBackend returns the Dell PowerStore storage backend. The schema
// mirrors the configuration options of the cinder-volume-dellpowerstore
// charm.
func NewBackend() storage.Backend {
	return storage.NewBackend(storage.BackendInfo{
		BackendType:  BackendType,
		DisplayName:  "Dell PowerStore",
		CharmChannel: "2025.1/edge",
		CharmBase:    "ubuntu@24.04",
		Schema: storage.Fields{
			"san_ip": {
				ExternalKey: "san-ip",
				Description: "Dell PowerStore management IP or FQDN",
				Type:        storage.Tstring,
				Mandatory:   true,
				Secret:      true,
				IPOrFQDN:    true,
			},
			"san_username": {
				ExternalKey: "san-username",
				Description: "Dell PowerStore management username",
				Type:        storage.Tstring,
				Mandatory:   true,
				Secret:      true,
			},
			"san_password": {
				ExternalKey: "san-password",
				Description: "Dell PowerStore management password",
				Type:        storage.Tstring,
				Mandatory:   true,
				Secret:      true,
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
			"driver_ssl_cert": {
				Description: "SSL certificate content in PEM format",
				Type:        storage.Tstring,
			},
			"powerstore_nvme": {
				Description: "Use an NVMe based protocol for the connection",
				Type:        storage.Tbool,
			},
			"powerstore_ports": {
				Description: "Comma separated list of PowerStore iSCSI IPs or FC WWNs",
				Type:        storage.Tstring,
			},
			"replication_device": {
				Description: "Replication configuration settings",
				Type:        storage.Tstring,
			},
		},
	})
}
