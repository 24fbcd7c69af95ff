// Copyright 2025 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package all registers every storage backend with the global registry.
// Import it for the side effect:
//
//	import _ "github.com/canonical/sunbeam-storage/storage/backends/all"
package all

import (
	_ "github.com/canonical/sunbeam-storage/storage/backends/dellpowerstore"
	_ "github.com/canonical/sunbeam-storage/storage/backends/dellsc"
	_ "github.com/canonical/sunbeam-storage/storage/backends/hitachi"
	_ "github.com/canonical/sunbeam-storage/storage/backends/purestorage"
)
