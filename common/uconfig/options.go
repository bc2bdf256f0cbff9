/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package uconfig

import (
	"fmt"
	"os"
	"path/filepath"
)

func WithLoad(filename string) func(*UConfig) error {
	return func(c *UConfig) error {
		return c.Load(filename)
	}
}

func WithLoadOrCreate(filename string) func(*UConfig) error {
	return func(c *UConfig) error {
		if _, err := os.Stat(filename); err == nil {
			return c.Load(filename)
		}
		if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
			return fmt.Errorf("could not create configuration directory: %w", err)
		}
		return c.Save(filename)
	}
}

// WithFindOrCreate loads the first file in the list that exists. If none
// exists, the first location that can be written is created.
func WithFindOrCreate(filenames []string) func(*UConfig) error {
	return func(c *UConfig) error {
		for _, filename := range filenames {
			if _, err := os.Stat(filename); err == nil {
				return c.Load(filename)
			}
		}

		for _, filename := range filenames {
			file, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
			if err == nil {
				_ = file.Close()
				return c.Save(filename)
			}
		}
		return fmt.Errorf("could not create configuration file")
	}
}
