/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package ulogger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuroinfo/dwiqc/common/fields"
)

func TestStdoutFormat(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(WithPrefix("dwiqc-test"), WithOutput(&buf))
	require.NoError(t, err)

	l.Info(4001, "rendered", fields.NewFields(fields.NewField("id", "S1_DWI_12_DWIQC")))
	out := buf.String()
	assert.Contains(t, out, "dwiqc-test [INFO] 4001 rendered: id=S1_DWI_12_DWIQC")
}

func TestDebugSuppressed(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(WithOutput(&buf))
	require.NoError(t, err)
	l.Debugf(1, "hidden %d", 1)
	assert.Empty(t, buf.String())

	l, err = New(WithOutput(&buf), WithDebug(true))
	require.NoError(t, err)
	l.Debugf(1, "shown %d", 2)
	assert.Contains(t, buf.String(), "[DEBUG] 0001 shown 2")
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dwiqc.log")
	l, err := New(WithLogFile(path), WithLogStdout(false))
	require.NoError(t, err)
	l.Errorf(2000, "import failed: %s", "missing ID")
	l.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[ERROR] 2000 import failed: missing ID")
}

func TestDeleteOldLogs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dwiqc.log")
	old := time.Now().AddDate(0, 0, -40).Format("20060102")
	recent := time.Now().AddDate(0, 0, -2).Format("20060102")
	require.NoError(t, os.WriteFile(path+"-"+old, []byte("x"), 0600))
	require.NoError(t, os.WriteFile(path+"-"+recent, []byte("x"), 0600))

	u := &ULogger{logfile: path, retainDays: 30}
	require.NoError(t, u.deleteOldLogs())

	_, err := os.Stat(path + "-" + old)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(path + "-" + recent)
	assert.NoError(t, err)
}
