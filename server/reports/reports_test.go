/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package reports

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
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

var (
	admin  = schema.AuthInfo{ID: "root", Role: schema.RoleAdmin, Authenticated: true}
	nobody = schema.AuthInfo{ID: "eve", Role: schema.RoleUser, Authenticated: true}
)

func newTestData(t *testing.T) *data.Data {
	t.Helper()
	dir := t.TempDir()

	conf := global.ConfigFrom(uconfig.Null())
	conf.SC.Set(global.ConfigDBPath, dir)
	conf.SC.Set(global.ConfigFilesPath, filepath.Join(dir, "files"))
	conf.SC.Set(global.ConfigExternalURL, "https://qc.example.org/")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "files"), 0700))

	d, err := data.New(conf, null.Logger())
	require.NoError(t, err)
	t.Cleanup(d.Close)

	artifacts := t.TempDir()
	xmlDoc, err := os.ReadFile(filepath.Join("..", "assessor", "testdata", "assessment.xml"))
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(artifacts, "assessor"), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(artifacts, "assessor", "assessment.xml"), xmlDoc, 0600))

	_, err = d.ImportArtifacts(artifacts)
	require.NoError(t, err)
	return d
}

func TestGetValidates(t *testing.T) {
	d := newTestData(t)

	_, err := Get(d, admin, schema.ReportRequest{Report: "agents"})
	assert.ErrorIs(t, err, ErrInvalidReport)

	_, err = Get(d, admin, schema.ReportRequest{Report: schema.ReportMetrics})
	assert.ErrorContains(t, err, "missing required argument: id")

	_, err = Get(d, admin, schema.ReportRequest{
		Report:     schema.ReportAssessments,
		Parameters: map[string]string{"colour": "blue"}})
	assert.ErrorContains(t, err, "invalid argument")
}

func TestAssessmentReport(t *testing.T) {
	d := newTestData(t)

	report, err := Get(d, admin, schema.ReportRequest{Report: schema.ReportAssessments})
	require.NoError(t, err)
	assert.Equal(t, schema.ReportTypeString, report.Type)
	assert.Equal(t, schema.ReportAssessments, report.Name)
	assert.True(t, strings.HasPrefix(string(report.Data), "Assessments:\n"+fixtureID+", TestProject, "))
	assert.Contains(t, string(report.Data), "https://qc.example.org/app/report/"+fixtureID)

	report, err = Get(d, admin, schema.ReportRequest{
		Report:     schema.ReportAssessments,
		Parameters: map[string]string{"project": "Elsewhere", "format": "json"}})
	require.NoError(t, err)
	assert.Equal(t, schema.ReportTypeJSON, report.Type)
	assert.JSONEq(t, `[]`, string(report.Data))

	// Users only see granted projects
	report, err = Get(d, nobody, schema.ReportRequest{
		Report:     schema.ReportAssessments,
		Parameters: map[string]string{"format": "json"}})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(report.Data))
}

func TestMetricsReport(t *testing.T) {
	d := newTestData(t)

	report, err := Get(d, admin, schema.ReportRequest{
		Report:     schema.ReportMetrics,
		Parameters: map[string]string{"id": fixtureID}})
	require.NoError(t, err)
	assert.Contains(t, string(report.Data), "Average SNR b0: 27.41237\n")
	assert.Contains(t, string(report.Data), "CNR b1000: 1.87654\n")

	report, err = Get(d, admin, schema.ReportRequest{
		Report:     schema.ReportMetrics,
		Parameters: map[string]string{"id": fixtureID, "format": "json"}})
	require.NoError(t, err)
	var q schema.EddyQuad
	require.NoError(t, json.Unmarshal(report.Data, &q))
	assert.InDelta(t, 27.41237, q.AverageSNRb0, 1e-9)

	report, err = Get(d, admin, schema.ReportRequest{
		Report:     schema.ReportMetrics,
		Parameters: map[string]string{"id": fixtureID, "format": "xml"}})
	require.NoError(t, err)
	assert.Equal(t, schema.ReportTypeXML, report.Type)
	assert.Contains(t, string(report.Data), `ID="`+fixtureID+`"`)

	_, err = Get(d, nobody, schema.ReportRequest{
		Report:     schema.ReportMetrics,
		Parameters: map[string]string{"id": fixtureID}})
	assert.ErrorIs(t, err, schema.ErrAccessDenied)

	_, err = Get(d, admin, schema.ReportRequest{
		Report:     schema.ReportMetrics,
		Parameters: map[string]string{"id": "nope"}})
	assert.ErrorIs(t, err, schema.ErrNotFound)
}
