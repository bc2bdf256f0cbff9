/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package userver

import (
	"net/http"

	"github.com/neuroinfo/dwiqc/common/interfaces"
)

type HServer struct {
	Headers         Headers
	Routes          Routes
	Listen          string
	HTTPTimeout     int
	HTTPIdleTimeout int
	HandlerTimeout  int
	MaxConcurrent   int
	PenaltyBoxMin   int
	PenaltyBoxMax   int
	DownFile        string
	AuthCookie      string // optional cookie consulted when no Authorization header is sent
	HealthHandler   bool
	DefaultHeaders  bool
	AuthFunc        AuthFunc // used for not found and method not allowed handlers
	Logger          interfaces.Logger
	SEid            uint32 // starting event ID for logging
	FileSrv         FileServer
	server          *http.Server
}

type FileServer struct {
	Dir      string
	Pattern  string
	AuthFunc AuthFunc
	Access   FileAccessFunc
}

// FileAccessFunc decides whether an authenticated request may read the
// file at name, relative to the file server directory
type FileAccessFunc func(req *http.Request, name string) bool

// AuthFunc authenticates a request given the source IP and the
// Authorization header value. On failure the []byte, if not nil, is sent
// to the client. On success the "any" value is made available to the
// handler through AuthDetailsFrom.
type AuthFunc func(src string, authorization string) (bool, []byte, any)

// Route defines a route for the HTTP router. Handler serves HTML, files or
// anything else. JHandler returns a JResponse that is marshalled to JSON.
type Route struct {
	Name     string
	Methods  []string
	Pattern  string
	Handler  http.Handler
	JHandler JHandler
	AuthFunc AuthFunc
}

type Routes []Route

type Header struct {
	Key   string
	Value string
}

type Headers []Header

// Response provides a consistent set of fields for API responses
type Response struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Details string `json:"details,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// JHandler is the type of the function to be wrapped
type JHandler func(req *http.Request) JResponse

// JResponse is the structure returned by the wrapped function.
// Cookies, if any, are set before the body is written.
type JResponse struct {
	HTTPCode int
	JSONData any
	Cookies  []*http.Cookie
}
