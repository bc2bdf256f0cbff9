//
// Copyright (c) 2025-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package params

import (
	"strconv"
	"strings"

	"github.com/neuroinfo/dwiqc/common/interfaces"
)

// Ensure Value implements the ParameterValue interface
var _ interfaces.ParameterValue = (*Value)(nil)

type Value string

// NewValue is a convenience function that returns a "" as a ParameterValue
func NewValue() interfaces.ParameterValue {
	return Value("")
}

func (v Value) String() string {
	return string(v)
}

func (v Value) Bytes() []byte {
	return []byte(v.String())
}

// Int returns 0 if the value is not an integer
func (v Value) Int() int {
	i, err := strconv.Atoi(v.String())
	if err != nil {
		return 0
	}
	return i
}

// Bool returns false if the value is not a boolean
func (v Value) Bool() bool {
	b, err := strconv.ParseBool(v.String())
	if err != nil {
		return false
	}
	return b
}

// SplitMap converts a comma-separated Value to a set. Blank entries are skipped.
func (v Value) SplitMap() map[string]any {
	m := make(map[string]any)
	for _, part := range v.SplitList() {
		m[part] = struct{}{}
	}
	return m
}

// SplitList converts a comma-separated Value to a []string. Blank entries are skipped.
func (v Value) SplitList() []string {
	var out []string
	for _, part := range strings.Split(v.String(), ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
