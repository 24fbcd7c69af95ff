// Copyright 2025 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package dellsc provides the Dell Storage Center backend.
package dellsc

import (
	"github.com/canonical/sunbeam-storage/storage"
)

// BackendType is the Dell Storage Center backend type identifier.
const BackendType = "dellsc"

func init() {
	storage.RegisterBackend(NewBackend())
}

// NewBackend returns the Dell Storage Center backend. The schema mirrors
// the configuration options of the cinder-volume-dellsc charm.
func NewBackend() storage.Backend {
	return storage.NewBackend(storage.BackendInfo{
		BackendType:  BackendType,
		DisplayName:  "Dell Storage Center",
		CharmChannel: "2025.1/edge",
		CharmBase:    "ubuntu@24.04",
		Schema: storage.Fields{
			"san_ip": {
				ExternalKey: "san-ip",
				Description: "Storage Center management IP or FQDN",
				Type:        storage.Tstring,
				Mandatory:   true,
				Secret:      true,
				IPOrFQDN:    true,
			},
			"san_username": {
				ExternalKey: "san-username",
				Description: "Storage Center management username",
				Type:        storage.Tstring,
				Mandatory:   true,
				Secret:      true,
			},
			"san_password": {
				ExternalKey: "san-password",
				Description: "Storage Center management password",
				Type:        storage.Tstring,
				Mandatory:   true,
				Secret:      true,
			},
			"dell_sc_ssn": {
				Description: "Storage Center serial number",
				Type:        storage.Tstring,
				Mandatory:   true,
			},
			"dell_sc_api_port": {
				Description: "Dell Enterprise Manager API port",
				Type:        storage.Tstring,
			},
			"protocol": {
				Description: "Storage protocol (fc or iscsi)",
				Type:        storage.Tstring,
				Values:      []string{"fc", "iscsi"},
			},
			"excluded_domain_ips": {
				Description: "Comma separated list of fault domain IPs to exclude from iSCSI returns",
				Type:        storage.Tstring,
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
