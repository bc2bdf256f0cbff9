/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package db

import (
	"regexp"
)

var invalidKeyChars = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)

// validateKey removes anything other than a-z, A-Z, 0-9, underscore,
// period, and hyphen
func validateKey(key string) string {
	return invalidKeyChars.ReplaceAllString(key, "")
}

// ValidKey reports whether key can be stored unchanged and used as a
// single path element. Keys starting with a period are rejected, which
// excludes "." and ".." as well as hidden and staging names.
func ValidKey(key string) bool {
	return key != "" && key[0] != '.' && validateKey(key) == key
}
