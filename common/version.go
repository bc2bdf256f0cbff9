//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package common

const (
	Version = "0.3.1"
	Build   = 31
)
