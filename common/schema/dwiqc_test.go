/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDwiqcFromItem(t *testing.T) {
	d := &Dwiqc{
		ID:      "S1_DWI_12_DWIQC",
		Project: "P1",
		Label:   "S1_DWI_12_DWIQC",
		OutFile: []AbstractResource{{Kind: KindResource, Label: "FA_map", URI: "/files/x/FA_map/fa.png"}},
	}
	item, err := d.Item()
	require.NoError(t, err)
	assert.Equal(t, XSITypeDwiqc, item.XSIType)

	item.Project = "P2"
	got, err := NewDwiqc(item)
	require.NoError(t, err)
	assert.Equal(t, "P2", got.Project)
	assert.Equal(t, d.OutFile, got.OutFile)
}

func TestNewDwiqcErrors(t *testing.T) {
	_, err := NewDwiqc(Item{ID: "x", XSIType: "xnat:mrSessionData"})
	assert.ErrorIs(t, err, ErrNotDwiqc)

	_, err = NewDwiqc(Item{ID: "x", XSIType: XSITypeDwiqc, Data: json.RawMessage(`{"out_file":`)})
	assert.Error(t, err)
}

func TestNewDwiqcKeepsNullResourceList(t *testing.T) {
	got, err := NewDwiqc(Item{ID: "x", XSIType: XSITypeDwiqc, Data: json.RawMessage(`{"out_file":null}`)})
	require.NoError(t, err)
	assert.Nil(t, got.OutFile)

	got, err = NewDwiqc(Item{ID: "x", XSIType: XSITypeDwiqc, Data: json.RawMessage(`{"out_file":[]}`)})
	require.NoError(t, err)
	assert.NotNil(t, got.OutFile)
	assert.Empty(t, got.OutFile)
}

func TestValidateReport(t *testing.T) {
	assert.NoError(t, ValidateReport(ReportAssessments, nil))
	assert.NoError(t, ValidateReport(ReportAssessments, map[string]string{"project": "P1"}))
	assert.Error(t, ValidateReport("nope", nil))
	assert.Error(t, ValidateReport(ReportMetrics, map[string]string{}))
	assert.NoError(t, ValidateReport(ReportMetrics, map[string]string{"id": "a"}))
	assert.Error(t, ValidateReport(ReportMetrics, map[string]string{"id": "a", "bogus": "1"}))
	assert.Equal(t, []string{ReportAssessments, ReportMetrics}, ReportNames())
}

func TestRoles(t *testing.T) {
	assert.True(t, ReadsAllProjects(RoleAdmin))
	assert.False(t, ReadsAllProjects(RoleUser))
	assert.Equal(t, "user", RoleName(RoleUser))
}

func TestValidUsername(t *testing.T) {
	assert.True(t, ValidUsername("alice"))
	assert.True(t, ValidUsername("j.doe-2_x"))
	assert.False(t, ValidUsername(""))
	assert.False(t, ValidUsername("bad name"))
	assert.False(t, ValidUsername("x/y"))
}
