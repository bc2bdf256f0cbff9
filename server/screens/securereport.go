/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package screens

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/neuroinfo/dwiqc/common"
	"github.com/neuroinfo/dwiqc/common/fields"
	"github.com/neuroinfo/dwiqc/common/interfaces"
	"github.com/neuroinfo/dwiqc/common/schema"
	"github.com/neuroinfo/dwiqc/common/userver"
)

// ItemStore is the item lookup SecureReport depends on
type ItemStore interface {
	GetItem(id string) (schema.Item, error)
	CanRead(who schema.AuthInfo, project string) bool
}

// SecureReport serves /app/report/{id}. It loads the item, checks that
// the caller may read its project, seeds the context, and then lets the
// screen registered for the item's type finish the context before the
// page is rendered.
type SecureReport struct {
	store    ItemStore
	registry *Registry
	renderer *Renderer
	logger   interfaces.Logger
}

func NewSecureReport(store ItemStore, registry *Registry, logger interfaces.Logger) (*SecureReport, error) {
	renderer, err := NewRenderer(registry.Screens())
	if err != nil {
		return nil, err
	}
	return &SecureReport{store: store, registry: registry, renderer: renderer, logger: logger}, nil
}

func (s *SecureReport) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	who, _ := userver.AuthDetailsFrom(req).(schema.AuthInfo)

	item, err := s.store.GetItem(id)
	if errors.Is(err, schema.ErrNotFound) {
		s.errorPage(w, http.StatusNotFound, "report not found")
		return
	}
	if err != nil {
		s.logger.Error(4001, "item lookup failed",
			fields.NewFields(fields.NewField("id", id), fields.NewField("error", err.Error())))
		s.errorPage(w, http.StatusInternalServerError, "unable to load report")
		return
	}

	if !s.store.CanRead(who, item.Project) {
		s.logger.Warning(4002, "report access denied",
			fields.NewFields(
				fields.NewField("id", id),
				fields.NewField("user", who.ID),
				fields.NewField("project", item.Project)))
		s.errorPage(w, http.StatusForbidden, "access denied")
		return
	}

	screen := s.registry.Lookup(item.XSIType)
	data := &RunData{Request: req, User: who, Item: item}

	ctx := NewContext()
	ctx.Put("item", item)
	ctx.Put("user", who.ID)
	ctx.Put("title", item.Label)
	ctx.Put("server_version", common.Version)

	if err = screen.FinalProcessing(data, ctx); err != nil {
		s.logger.Error(4003, "screen processing failed",
			fields.NewFields(
				fields.NewField("screen", screen.Name()),
				fields.NewField("id", id),
				fields.NewField("error", err.Error())))
		s.errorPage(w, http.StatusInternalServerError, "unable to build report")
		return
	}

	s.render(w, http.StatusOK, screen.Template(), ctx)
}

func (s *SecureReport) errorPage(w http.ResponseWriter, code int, message string) {
	ctx := NewContext()
	ctx.Put("title", http.StatusText(code))
	ctx.Put("code", code)
	ctx.Put("message", message)
	ctx.Put("server_version", common.Version)
	s.render(w, code, errorTemplate, ctx)
}

// render writes the page only after it rendered completely
func (s *SecureReport) render(w http.ResponseWriter, code int, name string, ctx *Context) {
	var page bytes.Buffer
	if err := s.renderer.Render(&page, name, ctx); err != nil {
		s.logger.Error(4004, "template error",
			fields.NewFields(fields.NewField("template", name), fields.NewField("error", err.Error())))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = page.WriteTo(w)
}
