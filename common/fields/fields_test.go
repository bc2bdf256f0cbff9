/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToText(t *testing.T) {
	f := NewFields(NewField("id", "A_DWI_12_DWIQC"), NewField("code", 200))
	f.AppendKV("label", "FA map")
	assert.Equal(t, `id=A_DWI_12_DWIQC code=200 label="FA map"`, f.ToText())
}

func TestToTextNil(t *testing.T) {
	var f *Fields
	assert.Equal(t, "", f.ToText())
	assert.Nil(t, f.ToPairs())
}

func TestToPairs(t *testing.T) {
	f := NewFields(NewField("a", 1), NewField("b", "two"))
	pairs := f.ToPairs()
	assert.Len(t, pairs, 2)
	assert.Equal(t, "b", pairs[1].Name())
	assert.Equal(t, "two", pairs[1].Value())
}
