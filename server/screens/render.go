/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package screens

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/neuroinfo/dwiqc/common/schema"
	"github.com/neuroinfo/dwiqc/server/assessor"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	layoutTemplate = "templates/layout.html"
	errorTemplate  = "error.html"
)

// Renderer holds one parsed template set per page
type Renderer struct {
	pages map[string]*template.Template

	// collate.Collator is not safe for concurrent use
	mu       sync.Mutex
	collator *collate.Collator
}

// NewRenderer parses the layout together with each screen's template
// and the error page
func NewRenderer(screens []ReportScreen) (*Renderer, error) {
	r := &Renderer{
		pages:    make(map[string]*template.Template),
		collator: collate.New(language.English, collate.IgnoreCase),
	}

	names := []string{errorTemplate}
	for _, s := range screens {
		names = append(names, s.Template())
	}

	for _, name := range names {
		if _, ok := r.pages[name]; ok {
			continue
		}
		t, err := template.New(name).Funcs(r.funcs()).ParseFS(templateFS, layoutTemplate, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render executes a page into w
func (r *Renderer) Render(w io.Writer, name string, ctx *Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %s", name)
	}

	if err := t.ExecuteTemplate(w, "layout", ctx.values); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	return nil
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"metric":       assessor.FormatMetric,
		"shell":        assessor.ShellLabel,
		"role":         schema.RoleName,
		"sortedLabels": r.SortedLabels,
	}
}

// SortedLabels returns the keys of a file map in locale aware order
func (r *Renderer) SortedLabels(m map[string]string) []string {
	labels := make([]string, 0, len(m))
	for k := range m {
		labels = append(labels, k)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.collator.SortStrings(labels)
	return labels
}
