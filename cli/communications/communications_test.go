/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package communications

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuroinfo/dwiqc/cli/global"
	"github.com/neuroinfo/dwiqc/cli/util"
)

type seen struct {
	method, path, query, auth, agent, contentType, body string
}

func newTestServer(t *testing.T) *seen {
	t.Helper()
	s := &seen{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		*s = seen{r.Method, r.URL.Path, r.URL.RawQuery, r.Header.Get("Authorization"),
			r.Header.Get("User-Agent"), r.Header.Get("Content-Type"), string(b)}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	t.Cleanup(srv.Close)

	old := global.ServerURL
	global.ServerURL = srv.URL
	t.Cleanup(func() { global.ServerURL = old })
	return s
}

func TestRequests(t *testing.T) {
	s := newTestServer(t)
	c := New("tok")

	code, body, err := c.GetQuery("/api/v1/assessment", util.Pairs{"project": "P 1"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
	assert.Equal(t, "project=P+1", s.query)
	assert.Equal(t, "Bearer tok", s.auth)
	assert.Equal(t, global.Name+"/"+global.Version, s.agent)

	_, _, err = c.Post("/api/v1/report", map[string]string{"report": "metrics"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, s.method)
	assert.Equal(t, "application/json", s.contentType)
	assert.JSONEq(t, `{"report":"metrics"}`, s.body)

	// Escaped download addresses reach the server decoded
	_, _, err = New().Get("/files/A/QC%20report/report%231.html")
	require.NoError(t, err)
	assert.Equal(t, "/files/A/QC report/report#1.html", s.path)
	assert.Empty(t, s.auth)
}
