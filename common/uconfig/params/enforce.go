/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package params

import (
	"fmt"
	"strconv"
)

// enforceAny checks Set() data. Empty strings and ints outside [min, max]
// (a zero bound is unbounded) are replaced by the default.
func enforceAny(value any, min int, max int, def Value) Value {
	switch v := value.(type) {

	case string:
		if v == "" {
			return def
		}
		return enforce(Element{Value: Value(v), Default: def, Min: min, Max: max})

	case int:
		if outOfRange(int64(v), min, max) {
			return def
		}
		return Value(strconv.Itoa(v))

	case int64:
		if outOfRange(v, min, max) {
			return def
		}
		return Value(strconv.FormatInt(v, 10))

	case []byte:
		return Value(v)

	default:
		return Value(fmt.Sprintf("%v", v))
	}
}

// enforce applies the default to empty or out of range values.
func enforce(e Element) Value {
	if e.Value == "" {
		return e.Default
	}

	if intValue, err := strconv.ParseInt(string(e.Value), 10, 64); err == nil {
		if outOfRange(intValue, e.Min, e.Max) {
			return e.Default
		}
	}
	return e.Value
}

func outOfRange(v int64, min, max int) bool {
	if min != 0 && v < int64(min) {
		return true
	}
	return max != 0 && v > int64(max)
}
