/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package uconfig

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load configuration from c.file
func (c *UConfig) loadFile() error {
	c.Init()

	file, err := os.Open(c.file)
	if err != nil {
		return fmt.Errorf("error opening file %s: %w", c.file, err)
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	// An empty file is a valid, empty configuration
	if info, statErr := file.Stat(); statErr == nil && info.Size() == 0 {
		return nil
	}

	if err = json.NewDecoder(file).Decode(c); err != nil {
		return fmt.Errorf("deserialization error: %w", err)
	}
	return nil
}
