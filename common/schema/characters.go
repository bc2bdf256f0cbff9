//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package schema

import "strings"

//goland:noinspection SpellCheckingInspection
const ValidUsernameChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-."

// ValidUsername reports whether name is non-empty and only uses ValidUsernameChars
func ValidUsername(name string) bool {
	if name == "" {
		return false
	}
	return strings.Trim(name, ValidUsernameChars) == ""
}
