/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCreatesLayout(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	file := filepath.Join(dir, "dwiqc-server.conf")
	t.Setenv(ConfigEnv, file)

	// Seed the data path so that no system location is touched
	seed := fmt.Sprintf(`{"sets":{"server_config":{"Data":{"data_path":{"value":%q}}}}}`, data)
	require.NoError(t, os.WriteFile(file, []byte(seed), 0600))

	c, err := Config()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(data, "db"), c.SC.Get(ConfigDBPath).String())
	assert.Equal(t, filepath.Join(data, "files"), c.SC.Get(ConfigFilesPath).String())
	assert.Equal(t, filepath.Join(data, "logs", LogName+".log"), c.SC.Get(ConfigLogFile).String())
	assert.DirExists(t, filepath.Join(data, "files"))
	assert.Equal(t, 30, c.SC.Get(ConfigHTTPTimeout).Int())

	key := c.SP.Get(ConfigJWTKey).String()
	assert.NotEmpty(t, key)

	// The generated key is persisted
	c, err = Config()
	require.NoError(t, err)
	assert.Equal(t, key, c.SP.Get(ConfigJWTKey).String())
}

func TestGenerateToken(t *testing.T) {
	a, err := GenerateToken()
	require.NoError(t, err)
	b, err := GenerateToken()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 88)
}
