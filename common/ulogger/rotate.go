/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package ulogger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// rotateLogs renames the log file to <logfile>-YYYYMMDD when the day changes.
// The caller holds u.mu.
func (u *ULogger) rotateLogs() error {
	if u.logfile == "" {
		return nil
	}

	currentDate := time.Now().Format("20060102")
	if u.currentLogDate == currentDate {
		return nil
	}

	previousLogDate := u.currentLogDate

	if u.fileHandle != nil {
		_ = u.fileHandle.Sync()
		_ = u.fileHandle.Close()
	}

	newLogFileName := fmt.Sprintf("%s-%s", u.logfile, previousLogDate)
	if err := os.Rename(u.logfile, newLogFileName); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	fh, err := os.OpenFile(u.logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		u.fileHandle = nil
		u.logStdout = true
		return fmt.Errorf("failed to open new log file after rotating: %w", err)
	}
	u.fileHandle = fh
	_ = os.Chmod(u.logfile, 0644)

	u.currentLogDate = currentDate

	if err = u.deleteOldLogs(); err != nil {
		return fmt.Errorf("failed to delete old log files: %w", err)
	}
	return nil
}

// deleteOldLogs deletes rotated log files older than retainDays
func (u *ULogger) deleteOldLogs() error {
	if u.retainDays <= 1 {
		return nil
	}

	cutoffDate := time.Now().AddDate(0, 0, -u.retainDays).Format("20060102")
	logDir := filepath.Dir(u.logfile)

	files, err := os.ReadDir(logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	prefix := filepath.Base(u.logfile) + "-"
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		name := file.Name()
		if !strings.HasPrefix(name, prefix) || len(name) < len(prefix)+8 {
			continue
		}
		fileDate := name[len(prefix) : len(prefix)+8]
		if fileDate < cutoffDate {
			if err = os.Remove(filepath.Join(logDir, name)); err != nil {
				return fmt.Errorf("failed to delete old log file: %w", err)
			}
		}
	}
	return nil
}
