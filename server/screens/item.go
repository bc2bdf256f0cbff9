/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package screens

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/neuroinfo/dwiqc/common"
)

const maxFieldText = 512

// ItemScreen lists the raw fields of an item of any type
type ItemScreen struct{}

// Name is the fallback screen name for unregistered item types
func (ItemScreen) Name() string {
	return "XDATScreen_report_item"
}

// Template names the embedded page template
func (ItemScreen) Template() string {
	return "report_item.html"
}

type itemField struct {
	Name  string
	Value string
}

// FinalProcessing publishes the item as "om" and its top level fields,
// sorted by name, as "fields"
func (ItemScreen) FinalProcessing(data *RunData, ctx *Context) error {
	var raw map[string]json.RawMessage
	if len(data.Item.Data) > 0 {
		if err := json.Unmarshal(data.Item.Data, &raw); err != nil {
			return fmt.Errorf("decoding item %s: %w", data.Item.ID, err)
		}
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	slices.Sort(names)

	list := make([]itemField, 0, len(names))
	for _, name := range names {
		list = append(list, itemField{Name: name, Value: fieldText(raw[name])})
	}

	ctx.Put("om", data.Item)
	ctx.Put("fields", list)
	return nil
}

// fieldText shows strings unquoted and everything else as compact JSON,
// folded onto one line and cut at maxFieldText runes
func fieldText(v json.RawMessage) string {
	var s string
	if json.Unmarshal(v, &s) != nil {
		var buf bytes.Buffer
		if json.Compact(&buf, v) != nil {
			s = string(v)
		} else {
			s = buf.String()
		}
	}
	return common.Truncate(common.SingleLine(s), maxFieldText)
}
