/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package reports

import (
	"errors"
	"fmt"

	"github.com/neuroinfo/dwiqc/common/schema"
	"github.com/neuroinfo/dwiqc/server/data"
	"github.com/neuroinfo/dwiqc/server/reports/assessmentReport"
	"github.com/neuroinfo/dwiqc/server/reports/metricsReport"
)

// ErrInvalidReport is returned for unknown report names
var ErrInvalidReport = errors.New("invalid report")

type ReportHandler interface {
	Report(data *data.Data, who schema.AuthInfo, req schema.ReportRequest) (schema.Report, error)
}

var handlers = map[string]ReportHandler{
	schema.ReportAssessments: &assessmentReport.Report{},
	schema.ReportMetrics:     &metricsReport.Report{},
}

// Get validates a report request and runs the named report as the caller
func Get(data *data.Data, who schema.AuthInfo, req schema.ReportRequest) (schema.Report, error) {
	handler, exists := handlers[req.Report]
	if !exists {
		return schema.Report{}, fmt.Errorf("%w: %s", ErrInvalidReport, req.Report)
	}

	if err := schema.ValidateReport(req.Report, req.Parameters); err != nil {
		return schema.Report{}, err
	}

	report, err := handler.Report(data, who, req)
	if err != nil {
		return report, err
	}
	report.Name = req.Report
	return report, nil
}
