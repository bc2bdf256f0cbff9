/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package hasher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sha256("hello\n")
const helloSum = "5891b5b522d5df086d0ff0b110fbd9d21bb4fc7163af34d08286a2e846f6be03"

func TestSHA256File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qc.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\n"), 0600))

	h := New(WithCache(60))
	sum := h.SHA256File(path)
	assert.Equal(t, helloSum, sum.Hex())
	assert.True(t, sum.Compare(helloSum))
	assert.Equal(t, 1, h.cache.Len())

	// Second call is served from the cache
	assert.Equal(t, helloSum, h.SHA256File(path).Hex())
	assert.Equal(t, 1, h.cache.Len())
}

func TestSHA256FileMissing(t *testing.T) {
	h := New()
	sum := h.SHA256File(filepath.Join(t.TempDir(), "nope"))
	assert.Equal(t, "", sum.Hex())
	assert.Equal(t, "", sum.Base64())
	assert.False(t, sum.Compare(helloSum))
	assert.Equal(t, "", h.SHA256File("").Hex())
}
