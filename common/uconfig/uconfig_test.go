/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package uconfig

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOrCreateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "dwiqc-server.conf")

	c, err := New(WithFindOrCreate([]string{filepath.Join(dir, "missing", "x.conf"), file}))
	require.NoError(t, err)
	assert.Equal(t, file, c.File())

	sc := c.NewSet("server_config")
	sc.SetConstraint("listen", 0, 0, "127.0.0.1:8080")
	sc.Set("listen", "0.0.0.0:9000")
	require.NoError(t, c.Checkpoint())

	c2, err := New(WithLoad(file))
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", c2.NewSet("server_config").Get("listen").String())
}

func TestCheckpointWithoutFile(t *testing.T) {
	assert.Error(t, Null().Checkpoint())
}

func TestGetSetMissing(t *testing.T) {
	assert.Nil(t, Null().GetSet("nope"))
}

func TestLoadOrCreate(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sub", "dwiqc.conf")
	c, err := New(WithLoadOrCreate(file))
	require.NoError(t, err)
	c.NewSet("a").Set("k", "v")
	require.NoError(t, c.Checkpoint())

	c2, err := New(WithLoadOrCreate(file))
	require.NoError(t, err)
	assert.Equal(t, "v", c2.NewSet("a").Get("k").String())
}

func TestDump(t *testing.T) {
	c := Null()
	c.NewSet("server_config").Set("listen", ":8080")
	out, err := c.Dump()
	require.NoError(t, err)
	assert.Contains(t, out, "server_config")
}
