/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package uconfig persists named sets of constrained parameters as a
// single JSON file.
package uconfig

import (
	"fmt"
	"sync"

	"github.com/neuroinfo/dwiqc/common/interfaces"
	"github.com/neuroinfo/dwiqc/common/uconfig/params"
)

// Ensure UConfig implements the Config interface
var _ interfaces.Config = (*UConfig)(nil)

// UConfig holds all configuration data
type UConfig struct {
	mu   sync.Mutex
	file string                    // Path to configuration file
	Sets map[string]*params.Params `json:"sets"`
}

// Null returns an empty UConfig instance for testing
func Null() *UConfig {
	return &UConfig{Sets: make(map[string]*params.Params)}
}

// New returns an UConfig instance
func New(options ...func(*UConfig) error) (*UConfig, error) {
	c := Null()

	for _, op := range options {
		if err := op(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Init discards all loaded values
func (c *UConfig) Init() {
	c.Sets = make(map[string]*params.Params)
}

// File returns the path of the backing file, if any
func (c *UConfig) File() string {
	return c.file
}

// Save the configuration to the specified file
func (c *UConfig) Save(filename string) error {
	if filename != "" {
		c.file = filename
	}
	if c.file == "" {
		return fmt.Errorf("a filename is required")
	}
	return c.saveFile()
}

// Load the configuration from the specified file
func (c *UConfig) Load(filename string) error {
	if filename != "" {
		c.file = filename
	}
	if c.file == "" {
		return fmt.Errorf("a filename is required")
	}
	return c.loadFile()
}

// Checkpoint saves the configuration to the last loaded file
func (c *UConfig) Checkpoint() error {
	if c.file == "" {
		return fmt.Errorf("checkpoint requires a loaded configuration")
	}
	return c.Save("")
}

// GetSet returns a specific configuration set or nil
func (c *UConfig) GetSet(set string) interfaces.Parameters {
	c.mu.Lock()
	defer c.mu.Unlock()
	if value, ok := c.Sets[set]; ok {
		return value
	}
	return nil
}

// NewSet returns the named set, creating it if necessary. Values loaded
// from disk are preserved.
func (c *UConfig) NewSet(key string) interfaces.Parameters {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.Sets[key]; !ok {
		c.Sets[key] = params.New()
	}
	return c.Sets[key]
}
