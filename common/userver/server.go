/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package userver implements an HTTP server on top of net/http and
// gorilla/mux. Routes carry either a plain http.Handler (HTML pages, file
// downloads) or a JHandler whose result is marshalled to JSON. Every route
// is wrapped for authentication, timeouts, and request logging.
package userver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"path"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/net/netutil"

	"github.com/neuroinfo/dwiqc/common/fields"
	"github.com/neuroinfo/dwiqc/common/null"
)

// New returns a HServer struct with default values and options applied
func New(options ...func(*HServer) error) (*HServer, error) {
	s := &HServer{
		Listen:          "127.0.0.1:8080",
		HTTPTimeout:     60,
		HTTPIdleTimeout: 60,
		HandlerTimeout:  60,
		MaxConcurrent:   100,
		HealthHandler:   true,
		DefaultHeaders:  true,
	}

	for _, op := range options {
		if err := op(s); err != nil {
			return nil, err
		}
	}

	if s.Logger == nil {
		s.Logger = null.Logger()
	}
	return s, nil
}

// Router builds the gorilla/mux router for the configured routes.
// Start uses it, and tests can drive it directly with httptest.
func (s *HServer) Router() http.Handler {
	router := mux.NewRouter()

	routes := s.Routes
	if s.HealthHandler {
		routes = append(Routes{{
			Name:     "health",
			Methods:  []string{http.MethodGet},
			Pattern:  "/health",
			JHandler: s.HandlerHealth,
		}}, routes...)
	}

	for _, route := range routes {
		var h http.Handler
		switch {
		case route.JHandler != nil:
			h = s.JWrapper(route.Name, route.JHandler)
		case route.Handler != nil:
			h = route.Handler
		default:
			continue
		}
		router.Handle(route.Pattern, s.Wrapper(route.Name, h, route.AuthFunc)).Methods(route.Methods...)
	}

	if s.FileSrv.Dir != "" && s.FileSrv.Pattern != "" {
		fileServer := http.StripPrefix(s.FileSrv.Pattern, s.guardFiles(http.FileServer(noListing{http.Dir(s.FileSrv.Dir)})))
		router.PathPrefix(s.FileSrv.Pattern).Methods(http.MethodGet, http.MethodHead).
			Handler(s.Wrapper("FileServer", fileServer, s.FileSrv.AuthFunc))
		s.Logger.Info(s.SEid+2, "serving files",
			fields.NewFields(
				fields.NewField("dir", s.FileSrv.Dir),
				fields.NewField("pattern", s.FileSrv.Pattern)))
	}

	router.NotFoundHandler = s.Wrapper("Handler404", s.JWrapper("Handler404", s.Handler404), s.AuthFunc)
	router.MethodNotAllowedHandler = s.Wrapper("Handler405", s.JWrapper("Handler405", s.Handler405), s.AuthFunc)
	return router
}

// Start starts the server and blocks until it is stopped
func (s *HServer) Start() error {
	s.Logger.Info(s.SEid+1, "starting server", fields.NewFields(fields.NewField("listen", s.Listen)))

	if s.DefaultHeaders {
		s.AddHeader("Cache-Control", "no-cache, no-store, must-revalidate")
		s.AddHeader("Pragma", "no-cache")
		s.AddHeader("Expires", "0")
	}

	serv := &http.Server{
		Addr:              s.Listen,
		Handler:           s.Router(),
		ReadHeaderTimeout: time.Duration(s.HTTPTimeout) * time.Second,
		ReadTimeout:       time.Duration(s.HTTPTimeout) * time.Second,
		WriteTimeout:      time.Duration(s.HTTPTimeout) * time.Second,
		IdleTimeout:       time.Duration(s.HTTPIdleTimeout) * time.Second,
	}

	err := s.listen(serv)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *HServer) Stop() error {
	if s.server == nil {
		return errors.New("server is not running")
	}

	// Allow in-flight requests ten seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	return nil
}

// AddRoutes adds routes to the router
func (s *HServer) AddRoutes(routes Routes) {
	for _, route := range routes {
		s.AddRoute(route)
	}
}

// AddRoute adds a route to the router
func (s *HServer) AddRoute(route Route) {
	s.Routes = append(s.Routes, route)
}

// AddHeader adds a reply header
func (s *HServer) AddHeader(key, value string) {
	s.Headers = append(s.Headers, Header{key, value})
}

// listen replaces ListenAndServe with a listener that limits concurrent
// connections using netutil.LimitListener. MaxConcurrent 0 imposes no limit.
func (s *HServer) listen(server *http.Server) error {
	s.server = server

	addr := server.Addr
	if addr == "" {
		addr = ":http"
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	if s.MaxConcurrent > 0 {
		listener = netutil.LimitListener(listener, s.MaxConcurrent)
	}
	return server.Serve(listener)
}

// guardFiles consults FileSrv.Access before serving. A denied file is
// reported as missing so that its existence is not disclosed.
func (s *HServer) guardFiles(h http.Handler) http.Handler {
	if s.FileSrv.Access == nil {
		return h
	}
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !s.FileSrv.Access(req, path.Clean("/"+req.URL.Path)) {
			s.PenaltyBox()
			http.NotFound(w, req)
			return
		}
		h.ServeHTTP(w, req)
	})
}

// noListing hides directory indexes from the file server
type noListing struct {
	fs http.FileSystem
}

func (n noListing) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if st.IsDir() {
		_ = f.Close()
		return nil, fs.ErrNotExist
	}
	return f, nil
}
