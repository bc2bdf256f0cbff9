/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package assessmentReport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/neuroinfo/dwiqc/common/schema"
	"github.com/neuroinfo/dwiqc/server/data"
)

type Report struct{}

type row struct {
	schema.AssessmentRef
	URL string `json:"url"`
}

// Report lists the assessments the caller can read, optionally limited
// to the project parameter
func (r *Report) Report(data *data.Data, who schema.AuthInfo, req schema.ReportRequest) (schema.Report, error) {
	report := schema.NewReport()

	refs, err := data.ListAssessments(who, req.Parameters["project"])
	if err != nil {
		return report, fmt.Errorf("error listing assessments: %w", err)
	}

	rows := make([]row, 0, len(refs))
	for _, ref := range refs {
		rows = append(rows, row{AssessmentRef: ref, URL: data.ReportURL(ref.ID)})
	}

	if req.Parameters["format"] == schema.ReportTypeJSON {
		jsonData, err := json.Marshal(rows)
		if err != nil {
			return report, fmt.Errorf("failed to serialize assessments: %w", err)
		}
		report.Type = schema.ReportTypeJSON
		report.Data = jsonData
		return report, nil
	}

	// Fall back to string format
	var buffer bytes.Buffer
	buffer.WriteString("Assessments:\n")
	for _, r := range rows {
		buffer.WriteString(fmt.Sprintf("%s, %s, %s, %s, %s\n",
			r.ID, r.Project, r.Label, r.Modified.Format(time.RFC3339), r.URL))
	}
	report.Data = buffer.Bytes()
	report.Type = schema.ReportTypeString
	return report, nil
}
