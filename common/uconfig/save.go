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

// Save configuration to c.file
func (c *UConfig) saveFile() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	file, err := os.OpenFile(c.file, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	// Configuration holds the JWT key
	_ = os.Chmod(c.file, 0600)

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err = encoder.Encode(c); err != nil {
		return fmt.Errorf("could not encode to JSON: %w", err)
	}
	return nil
}
