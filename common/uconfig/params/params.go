/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package params implements a simple key/value store with constraints that can be serialized to JSON.
package params

import (
	"fmt"
	"sync"

	"github.com/neuroinfo/dwiqc/common/interfaces"
)

// Ensure Params implements the Parameters interface
var _ interfaces.Parameters = (*Params)(nil)

type Element struct {
	Value   Value `json:"value"`
	Default Value `json:"default"`
	Min     int   `json:"min"`
	Max     int   `json:"max"`
}

type Params struct {
	mu   sync.Mutex
	Data map[string]Element
}

// New returns an initialized Params object
func New() *Params {
	return &Params{Data: make(map[string]Element)}
}

func (p *Params) init() {
	if p.Data == nil {
		p.Data = make(map[string]Element)
	}
}

// Exists checks if a key exists in the Params object
func (p *Params) Exists(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.Data[key]
	return ok
}

// Set a key/value pair. Empty strings and out of range ints fall back to the default.
func (p *Params) Set(key string, value any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.init()

	element := p.Data[key]
	element.Value = enforceAny(value, element.Min, element.Max, element.Default)
	p.Data[key] = element
}

// SetConstraint sets a min and max constraint and a default for a key.
// An existing value is kept.
func (p *Params) SetConstraint(key string, min, max int, def any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.init()

	element := p.Data[key]
	element.Default = Value(fmt.Sprintf("%v", def))
	element.Min = min
	element.Max = max
	p.Data[key] = element
}

// SetStringMap sets multiple key/value pairs
func (p *Params) SetStringMap(data map[string]string) {
	for key, value := range data {
		p.Set(key, value)
	}
}

// Get a Value with constraints enforced
func (p *Params) Get(key string) interfaces.ParameterValue {
	p.mu.Lock()
	defer p.mu.Unlock()

	element, ok := p.Data[key]
	if !ok {
		return NewValue()
	}

	ret := enforce(element)
	if ret != element.Value {
		element.Value = ret
		p.Data[key] = element
	}
	return ret
}

// GetMap converts the Params object to a map[string]string with constraints enforced
func (p *Params) GetMap() map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()

	r := make(map[string]string, len(p.Data))
	for key, element := range p.Data {
		r[key] = enforce(element).String()
	}
	return r
}
