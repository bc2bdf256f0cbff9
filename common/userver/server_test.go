/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package userver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuth(_ string, authorization string) (bool, []byte, any) {
	if authorization == "Bearer good" {
		return true, nil, "alice"
	}
	return false, []byte(`{"status":"error"}`), nil
}

func newTestServer(t *testing.T, options ...func(*HServer) error) *HServer {
	t.Helper()
	s, err := New(options...)
	require.NoError(t, err)
	return s
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var r Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Equal(t, "ok", r.Status)
}

func TestHealthDown(t *testing.T) {
	down := filepath.Join(t.TempDir(), "down")
	require.NoError(t, os.WriteFile(down, nil, 0600))
	s := newTestServer(t, WithDownFile(down))

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAuthAndDetails(t *testing.T) {
	s := newTestServer(t, WithAuthCookie("token"))
	s.AddRoute(Route{
		Name:    "whoami",
		Methods: []string{http.MethodGet},
		Pattern: "/whoami",
		Handler: http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			_, _ = w.Write([]byte(AuthDetailsFrom(req).(string)))
		}),
		AuthFunc: testAuth,
	})
	router := s.Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"status":"error"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "good"})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "alice", rec.Body.String())
}

func TestJHandlerCookiesAndNotFound(t *testing.T) {
	s := newTestServer(t)
	s.AddRoute(Route{
		Name:    "login",
		Methods: []string{http.MethodPost},
		Pattern: "/login",
		JHandler: func(_ *http.Request) JResponse {
			return JResponse{
				HTTPCode: http.StatusOK,
				JSONData: Response{Status: "ok", Code: http.StatusOK},
				Cookies:  []*http.Cookie{{Name: "token", Value: "abc"}},
			}
		},
	})
	router := s.Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "token=abc")
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nothing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFileServer(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a"), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a", "f.txt"), []byte("data"), 0600))

	s := newTestServer(t, WithFileDir("/files/", dir, nil))
	router := s.Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/files/a/f.txt", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "data", rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/files/a/", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFileServerAccess(t *testing.T) {
	dir := t.TempDir()
	for _, sub := range []string{"open", "closed"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, sub), 0700))
		require.NoError(t, os.WriteFile(filepath.Join(dir, sub, "f.txt"), []byte(sub), 0600))
	}

	var seen string
	s := newTestServer(t,
		WithFileDir("/files/", dir, nil),
		WithFileAccess(func(_ *http.Request, name string) bool {
			seen = name
			return !strings.HasPrefix(name, "/closed/")
		}))
	router := s.Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/files/open/f.txt", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/open/f.txt", seen)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/files/closed/f.txt", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRemoteIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.1.2.3:4567"
	assert.Equal(t, "10.1.2.3", RemoteIP(req))

	req.RemoteAddr = "[::1]:80"
	assert.Equal(t, "::1", RemoteIP(req))

	req.Header.Set("X-Forwarded-For", "192.0.2.7, 10.0.0.1")
	assert.Equal(t, "192.0.2.7", RemoteIP(req))
}
