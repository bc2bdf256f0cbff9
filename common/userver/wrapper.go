/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package userver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/neuroinfo/dwiqc/common/fields"
)

type contextKey int

const authDetailsKey contextKey = iota

// ResponseWriterWrapper wraps a http.ResponseWriter to capture the status code
type ResponseWriterWrapper struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code
func (rw *ResponseWriterWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// AuthDetailsFrom returns the value the AuthFunc attached to the request,
// or nil for unauthenticated routes
func AuthDetailsFrom(req *http.Request) any {
	return req.Context().Value(authDetailsKey)
}

// WithAuthDetails attaches authentication details to a request. The
// wrapper does this after a successful AuthFunc.
func WithAuthDetails(req *http.Request, details any) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), authDetailsKey, details))
}

// Wrapper wraps a http.Handler to add standard headers, logging, and optionally authentication
func (s *HServer) Wrapper(handlerName string, h http.Handler, authFunc AuthFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		startTime := time.Now()
		src := RemoteIP(req)

		if authFunc != nil {
			authenticated, failMsg, details := authFunc(src, s.authorization(req))
			if !authenticated {
				s.Logger.Warning(s.SEid+12,
					"authentication failure",
					fields.NewFields(
						fields.NewField("src_ip", src),
						fields.NewField("method", req.Method),
						fields.NewField("uri", stripQuery(req.RequestURI)),
						fields.NewField("handler", handlerName)))

				s.PenaltyBox()

				w.Header().Set("Content-Type", "application/json; charset=UTF-8")
				w.WriteHeader(http.StatusUnauthorized)
				if failMsg != nil {
					_, _ = w.Write(failMsg)
				}
				return
			}
			req = WithAuthDetails(req, details)
		}

		ctx, cancel := context.WithTimeout(req.Context(), time.Duration(s.HandlerTimeout)*time.Second)
		defer cancel()
		req = req.WithContext(ctx)

		for _, header := range s.Headers {
			w.Header().Set(header.Key, header.Value)
		}

		rw := &ResponseWriterWrapper{ResponseWriter: w, statusCode: http.StatusOK}
		h.ServeHTTP(rw, req)

		logFields := fields.NewFields(
			fields.NewField("code", rw.statusCode),
			fields.NewField("src_ip", src),
			fields.NewField("method", req.Method),
			fields.NewField("uri", stripQuery(req.RequestURI)),
			fields.NewField("handler", handlerName),
			fields.NewField("duration", fmt.Sprintf("%.4f", time.Since(startTime).Seconds())))

		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			logFields.Append(fields.NewField("timeout", "true"))
		}

		s.Logger.Info(s.SEid+10, "HTTP", logFields)
	})
}

// authorization returns the Authorization header or, if configured,
// the auth cookie presented as a bearer token
func (s *HServer) authorization(req *http.Request) string {
	if a := req.Header.Get("Authorization"); a != "" {
		return a
	}

	if s.AuthCookie != "" {
		if c, err := req.Cookie(s.AuthCookie); err == nil && c.Value != "" {
			return "Bearer " + c.Value
		}
	}
	return ""
}

// RemoteIP returns the client address without the port number. The first
// X-Forwarded-For entry is preferred to support reverse proxies.
func RemoteIP(req *http.Request) string {
	if forwarded := req.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	ip, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return ip
}

// stripQuery removes parameters from a URI to avoid logging confidential information
func stripQuery(uri string) string {
	return strings.Split(uri, "?")[0]
}
