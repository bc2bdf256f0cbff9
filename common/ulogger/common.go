/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package ulogger

import (
	"io"
	"os"

	"github.com/neuroinfo/dwiqc/common/interfaces"
)

// This package implements interfaces.Logger
var _ interfaces.Logger = (*ULogger)(nil)

// Option is a function that configures a ULogger
type Option func(*ULogger) error

// New creates a new instance of ULogger with the provided options
func New(options ...Option) (*ULogger, error) {
	u := &ULogger{retainDays: 30, out: os.Stdout}

	for _, option := range options {
		if err := option(u); err != nil {
			return nil, err
		}
	}
	return u.open()
}

// WithPrefix sets a process name or similar short identifier
func WithPrefix(prefix string) Option {
	return func(u *ULogger) error {
		u.prefix = prefix
		return nil
	}
}

// WithLogFile sets the log file for the ULogger
func WithLogFile(logfile string) Option {
	return func(u *ULogger) error {
		u.logfile = logfile
		return nil
	}
}

// WithLogStdout enables or disables logging to stdout
func WithLogStdout(logStdout bool) Option {
	return func(u *ULogger) error {
		u.logStdout = logStdout
		return nil
	}
}

// WithOutput replaces stdout as the console destination
func WithOutput(w io.Writer) Option {
	return func(u *ULogger) error {
		u.out = w
		return nil
	}
}

// WithDebug enables or disables debug logging
func WithDebug(debug bool) Option {
	return func(u *ULogger) error {
		u.debug = debug
		return nil
	}
}

// WithRetention sets the number of days to retain logs
func WithRetention(retainDays int) Option {
	return func(u *ULogger) error {
		u.retainDays = retainDays
		return nil
	}
}
