/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package screens renders HTML report pages for stored items. A screen
// fills a Context during FinalProcessing and names the template that
// renders it. SecureReport runs the lifecycle around a screen.
package screens

import (
	"net/http"
	"slices"

	"github.com/neuroinfo/dwiqc/common/schema"
)

// Context is the key/value store handed to a template
type Context struct {
	values map[string]any
}

func NewContext() *Context {
	return &Context{values: make(map[string]any)}
}

func (c *Context) Put(key string, value any) {
	c.values[key] = value
}

// Get returns the value stored under key or nil
func (c *Context) Get(key string) any {
	return c.values[key]
}

// Keys returns the stored keys in sorted order
func (c *Context) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// RunData is the per-request handle passed to a screen
type RunData struct {
	Request *http.Request
	User    schema.AuthInfo
	Item    schema.Item
}

// ReportScreen prepares the context for one item type
type ReportScreen interface {
	Name() string
	// Template is the file name below templates/
	Template() string
	FinalProcessing(data *RunData, ctx *Context) error
}
