/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package uconfig

import (
	"os"
	"path/filepath"
)

// CreateDir attempts to create the specified directory and
// returns a bool to indicate success or failure. If the directory
// already exists that is considered a success.
func CreateDir(path string) bool {
	return os.MkdirAll(path, 0700) == nil
}

// CreateSubDir joins dir and subDir and creates the result.
// It returns "" on failure.
func CreateSubDir(dir string, subDir string) string {
	newDir := filepath.Join(dir, subDir)
	if CreateDir(newDir) {
		return newDir
	}
	return ""
}
