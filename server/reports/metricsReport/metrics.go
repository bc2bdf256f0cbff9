/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package metricsReport

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/neuroinfo/dwiqc/common/schema"
	"github.com/neuroinfo/dwiqc/server/assessor"
	"github.com/neuroinfo/dwiqc/server/data"
)

type Report struct{}

// Report returns the eddy QUAD metrics of one assessment as text, JSON
// or assessment.xml
func (r *Report) Report(data *data.Data, who schema.AuthInfo, req schema.ReportRequest) (schema.Report, error) {
	report := schema.NewReport()

	d, err := data.Assessment(who, req.Parameters["id"])
	if err != nil {
		return report, err
	}

	var buffer bytes.Buffer
	switch req.Parameters["format"] {
	case schema.ReportTypeJSON:
		jsonData, err := json.Marshal(d.EddyQuad)
		if err != nil {
			return report, fmt.Errorf("failed to serialize metrics: %w", err)
		}
		report.Type = schema.ReportTypeJSON
		report.Data = jsonData
		return report, nil

	case schema.ReportTypeXML:
		if err = assessor.Encode(&buffer, d); err != nil {
			return report, err
		}
		report.Type = schema.ReportTypeXML
		report.Data = buffer.Bytes()
		return report, nil
	}

	q := d.EddyQuad
	buffer.WriteString(fmt.Sprintf("Assessment %s (%s):\n", d.ID, d.Project))
	buffer.WriteString(fmt.Sprintf("Average SNR b0: %s\n", assessor.FormatMetric(q.AverageSNRb0)))
	buffer.WriteString(fmt.Sprintf("Average absolute motion (mm): %s\n", assessor.FormatMetric(q.AverageAbsMotion)))
	buffer.WriteString(fmt.Sprintf("Average relative motion (mm): %s\n", assessor.FormatMetric(q.AverageRelMotion)))
	buffer.WriteString(fmt.Sprintf("Average x translation (mm): %s\n", assessor.FormatMetric(q.AverageXTranslation)))
	buffer.WriteString(fmt.Sprintf("Average y translation (mm): %s\n", assessor.FormatMetric(q.AverageYTranslation)))
	buffer.WriteString(fmt.Sprintf("Average z translation (mm): %s\n", assessor.FormatMetric(q.AverageZTranslation)))
	for _, s := range q.ShellCNR {
		buffer.WriteString(fmt.Sprintf("CNR %s: %s\n", assessor.ShellLabel(s.Shell), assessor.FormatMetric(s.CNR)))
	}
	report.Data = buffer.Bytes()
	report.Type = schema.ReportTypeString
	return report, nil
}
