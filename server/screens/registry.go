/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package screens

import (
	"github.com/neuroinfo/dwiqc/common/schema"
)

// Registry maps XSI types to screens
type Registry struct {
	screens  map[string]ReportScreen
	fallback ReportScreen
}

// NewRegistry returns a registry holding the built-in screens. Items of
// an unregistered type use the generic item screen.
func NewRegistry() *Registry {
	r := &Registry{
		screens:  make(map[string]ReportScreen),
		fallback: ItemScreen{},
	}
	r.Register(schema.XSITypeDwiqc, DwiqcScreen{})
	return r
}

func (r *Registry) Register(xsiType string, s ReportScreen) {
	r.screens[xsiType] = s
}

// Lookup returns the screen for an XSI type
func (r *Registry) Lookup(xsiType string) ReportScreen {
	if s, ok := r.screens[xsiType]; ok {
		return s
	}
	return r.fallback
}

// Screens returns every registered screen and the fallback
func (r *Registry) Screens() []ReportScreen {
	list := []ReportScreen{r.fallback}
	for _, s := range r.screens {
		list = append(list, s)
	}
	return list
}
