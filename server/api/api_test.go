/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuroinfo/dwiqc/common/null"
	"github.com/neuroinfo/dwiqc/common/schema"
	"github.com/neuroinfo/dwiqc/common/uconfig"
	"github.com/neuroinfo/dwiqc/server/data"
	"github.com/neuroinfo/dwiqc/server/global"
)

const fixtureID = "SES01_DWI_12_DWIQC"

type testAPI struct {
	api    *API
	router http.Handler
}

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0700))
	require.NoError(t, os.WriteFile(name, []byte(content), 0600))
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	dir := t.TempDir()

	conf := global.ConfigFrom(uconfig.Null())
	conf.SC.Set(global.ConfigDBPath, dir)
	conf.SC.Set(global.ConfigFilesPath, filepath.Join(dir, "files"))
	conf.SC.Set(global.ConfigPenaltyBoxMin, 0)
	conf.SC.Set(global.ConfigPenaltyBoxMax, 0)
	conf.SC.Set(global.ConfigAuthorizedAdminIPs, "192.0.2.1") // httptest client address
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "files"), 0700))

	a := New(conf, null.Logger())
	var err error
	a.data, err = data.New(conf, null.Logger())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	require.NoError(t, a.data.SetAuth("root", "rootpw", schema.RoleAdmin))
	require.NoError(t, a.data.SetAuth("bob", "bobpw", schema.RoleUser))

	artifacts := t.TempDir()
	xmlDoc, err := os.ReadFile(filepath.Join("..", "assessor", "testdata", "assessment.xml"))
	require.NoError(t, err)
	writeFile(t, filepath.Join(artifacts, "assessor", "assessment.xml"), string(xmlDoc))
	writeFile(t, filepath.Join(artifacts, "resources", "FA_map", "fa.png"), "hello\n")
	writeFile(t, filepath.Join(artifacts, "resources", "bval-avg", "b1000.png"), "b1000")
	writeFile(t, filepath.Join(artifacts, "resources", "bval-avg", "b2000.png"), "b2000")
	_, err = a.data.ImportArtifacts(artifacts)
	require.NoError(t, err)

	s, err := a.newServer("127.0.0.1:0")
	require.NoError(t, err)
	return &testAPI{api: a, router: s.Router()}
}

func (ta *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ta.router.ServeHTTP(rec, req)
	return rec
}

func (ta *testAPI) login(t *testing.T, user, pass string) schema.APILoginResponse {
	t.Helper()
	rec := ta.do(t, http.MethodPost, schema.EndpointLogin, "", schema.LoginRequest{Username: user, Password: pass})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp schema.APILoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestLoginAndRefresh(t *testing.T) {
	ta := newTestAPI(t)

	rec := ta.do(t, http.MethodPost, schema.EndpointLogin, "", schema.LoginRequest{Username: "bob", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ta.do(t, http.MethodPost, schema.EndpointLogin, "", schema.LoginRequest{Username: "bob", Password: "bobpw"})
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, schema.AuthCookie, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.False(t, cookies[0].Secure)

	tokens := decode[schema.APILoginResponse](t, rec)
	rec = ta.do(t, http.MethodPost, schema.EndpointRefresh, "", schema.RefreshRequest{RefreshToken: tokens.RefreshToken})
	require.Equal(t, http.StatusOK, rec.Code)
	refreshed := decode[schema.APITokenRefreshResponse](t, rec)
	assert.NotEmpty(t, refreshed.AccessToken)

	// An access token is not a refresh token
	rec = ta.do(t, http.MethodPost, schema.EndpointRefresh, "", schema.RefreshRequest{RefreshToken: tokens.AccessToken})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPing(t *testing.T) {
	ta := newTestAPI(t)

	rec := ta.do(t, http.MethodGet, schema.EndpointPing, "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ta.do(t, http.MethodGet, schema.EndpointPing, "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := ta.login(t, "bob", "bobpw").AccessToken
	rec = ta.do(t, http.MethodGet, schema.EndpointPing, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	pong := decode[schema.APIPingResponse](t, rec)
	assert.Equal(t, "pong", pong.Details)
	assert.Equal(t, schema.PingInfo{Server: global.Name, Version: global.Version, User: "bob", Role: "user"}, pong.Data)
}

func TestAssessmentAccess(t *testing.T) {
	ta := newTestAPI(t)
	bob := ta.login(t, "bob", "bobpw").AccessToken
	root := ta.login(t, "root", "rootpw").AccessToken

	rec := ta.do(t, http.MethodGet, schema.EndpointAssessment, bob, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[schema.APIAssessmentListResponse](t, rec).Data)

	rec = ta.do(t, http.MethodGet, schema.EndpointAssessment+"/"+fixtureID, bob, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ta.do(t, http.MethodPut, schema.EndpointUser+"/bob/grant/TestProject", bob, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = ta.do(t, http.MethodPut, schema.EndpointUser+"/bob/grant/TestProject", root, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ta.do(t, http.MethodGet, schema.EndpointUser+"/bob", root, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"TestProject"}, decode[schema.APIUserResponse](t, rec).Data.Projects)
	rec = ta.do(t, http.MethodGet, schema.EndpointUser+"/nobody", root, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ta.do(t, http.MethodGet, schema.EndpointAssessment+"?project=TestProject", bob, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[schema.APIAssessmentListResponse](t, rec).Data
	require.Len(t, list, 1)
	assert.Equal(t, fixtureID, list[0].ID)

	rec = ta.do(t, http.MethodGet, schema.EndpointAssessment+"/"+fixtureID, bob, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	d := decode[schema.APIAssessmentResponse](t, rec).Data
	require.NotNil(t, d)
	assert.InDelta(t, 27.41237, d.EddyQuad.AverageSNRb0, 1e-9)

	rec = ta.do(t, http.MethodDelete, schema.EndpointUser+"/bob/grant/TestProject", root, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = ta.do(t, http.MethodGet, schema.EndpointAssessment+"/"+fixtureID, bob, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAssessmentFiles(t *testing.T) {
	ta := newTestAPI(t)
	root := ta.login(t, "root", "rootpw").AccessToken

	rec := ta.do(t, http.MethodGet, schema.EndpointAssessment+"/"+fixtureID+"/files", root, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{
		"FA_map":             "/files/" + fixtureID + "/FA_map/fa.png",
		"bval-avg/b1000.png": "/files/" + fixtureID + "/bval-avg/b1000.png",
		"bval-avg/b2000.png": "/files/" + fixtureID + "/bval-avg/b2000.png",
	}, decode[schema.APIFileMapResponse](t, rec).Data)

	rec = ta.do(t, http.MethodGet, schema.EndpointAssessment+"/missing/files", root, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFileDownload(t *testing.T) {
	ta := newTestAPI(t)
	bob := ta.login(t, "bob", "bobpw").AccessToken
	root := ta.login(t, "root", "rootpw").AccessToken
	uri := "/files/" + fixtureID + "/FA_map/fa.png"

	rec := ta.do(t, http.MethodGet, uri, "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ta.do(t, http.MethodGet, uri, bob, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ta.do(t, http.MethodGet, uri, root, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello\n", rec.Body.String())
}

func TestReportScreenWithCookie(t *testing.T) {
	ta := newTestAPI(t)
	root := ta.login(t, "root", "rootpw").AccessToken

	req := httptest.NewRequest(http.MethodGet, schema.EndpointScreen+"/"+fixtureID, nil)
	req.AddCookie(&http.Cookie{Name: schema.AuthCookie, Value: root})
	rec := httptest.NewRecorder()
	ta.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), `<a href="/files/`+fixtureID+`/FA_map/fa.png">FA_map</a>`)

	rec = ta.do(t, http.MethodGet, schema.EndpointScreen+"/missing", root, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReportAndDelete(t *testing.T) {
	ta := newTestAPI(t)
	bob := ta.login(t, "bob", "bobpw").AccessToken
	root := ta.login(t, "root", "rootpw").AccessToken

	request := schema.ReportRequest{Report: schema.ReportMetrics, Parameters: map[string]string{"id": fixtureID}}
	rec := ta.do(t, http.MethodPost, schema.EndpointReport, bob, request)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ta.do(t, http.MethodPost, schema.EndpointReport, root, request)
	require.Equal(t, http.StatusOK, rec.Code)
	report := decode[schema.APIReportResponse](t, rec).Report
	assert.Contains(t, string(report.Data), "Average SNR b0: 27.41237")

	rec = ta.do(t, http.MethodPost, schema.EndpointReport, root, schema.ReportRequest{Report: "nope"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ta.do(t, http.MethodPost, schema.EndpointReport, root,
		schema.ReportRequest{Report: schema.ReportMetrics, Parameters: map[string]string{"id": "missing"}})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ta.do(t, http.MethodDelete, schema.EndpointAssessment+"/"+fixtureID, bob, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = ta.do(t, http.MethodDelete, schema.EndpointAssessment+"/"+fixtureID, root, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = ta.do(t, http.MethodGet, schema.EndpointAssessment+"/"+fixtureID, root, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminIPRestriction(t *testing.T) {
	ta := newTestAPI(t)
	root := ta.login(t, "root", "rootpw").AccessToken

	req := httptest.NewRequest(http.MethodGet, schema.EndpointPing, nil)
	req.RemoteAddr = "198.51.100.7:5555"
	req.Header.Set("Authorization", "Bearer "+root)
	rec := httptest.NewRecorder()
	ta.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
