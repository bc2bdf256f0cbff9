//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// See LICENSE file for details
//

package util

import (
	"fmt"
	"net/url"
	"strings"
)

// Pairs holds key=value command line arguments. Keys are lower case.
type Pairs map[string]string

// ParsePairs parses key=value arguments. An argument without "=" or
// with an empty key is an error so that typos are not silently ignored.
func ParsePairs(args []string) (Pairs, error) {
	p := make(Pairs, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		p[key] = value
	}
	return p, nil
}

// Values returns the pairs as URL query values
func (p Pairs) Values() url.Values {
	v := make(url.Values, len(p))
	for key, value := range p {
		v.Set(key, value)
	}
	return v
}
