/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package common

import (
	"strings"
)

// SingleLine normalizes a string for logging:
//   - trims leading/trailing whitespace
//   - replaces newlines with a visible marker
//   - collapses runs of whitespace into single spaces
func SingleLine(s string) string {
	if s == "" {
		return s
	}

	s = strings.TrimSpace(s)

	replacer := strings.NewReplacer(
		"\r\n", " | ",
		"\n", " | ",
		"\r", " | ",
	)
	s = replacer.Replace(s)

	return strings.Join(strings.Fields(s), " ")
}

// Truncate shortens s to at most n runes, marking the cut with "..."
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
