/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/neuroinfo/dwiqc/common"
	"github.com/neuroinfo/dwiqc/common/fields"
	"github.com/neuroinfo/dwiqc/common/schema"
	"github.com/neuroinfo/dwiqc/common/userver"
	"github.com/neuroinfo/dwiqc/server/reports"
)

// @Summary Generate report
// @Description Generates a named report (assessments, metrics)
// @Tags Reporting
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body schema.ReportRequest true "Report request"
// @Success 200 {object} schema.APIReportResponse
// @Failure 400 {object} schema.API400
// @Failure 401 {object} schema.API401
// @Failure 403 {object} schema.API403
// @Failure 404 {object} schema.API404
// @Router /report [post]
func (a *API) postReport(req *http.Request) userver.JResponse {
	logFields := callerFields(req)

	var request schema.ReportRequest
	if err := json.NewDecoder(http.MaxBytesReader(nil, req.Body, maxRequestBody)).Decode(&request); err != nil {
		a.logger.Error(2843, "invalid report request: "+common.SingleLine(err.Error()), logFields)
		return errorResponse(http.StatusBadRequest, "invalid JSON request")
	}

	logFields.Append(
		fields.NewField("report", request.Report),
		fields.NewField("parameters", request.Parameters))

	if request.Report == "" {
		a.logger.Error(2844, "missing report name", logFields)
		return errorResponse(http.StatusBadRequest, "missing required fields")
	}

	report, err := reports.Get(a.data, GetAuthDetails(req), request)
	if err != nil {
		logFields.Append(fields.NewField("error", err.Error()))
		a.logger.Error(2845, "report request failed", logFields)

		switch {
		case errors.Is(err, schema.ErrNotFound):
			return errorResponse(http.StatusNotFound, "assessment not found")
		case errors.Is(err, schema.ErrAccessDenied):
			return errorResponse(http.StatusForbidden, "access denied")
		case errors.Is(err, reports.ErrInvalidReport):
			return errorResponse(http.StatusBadRequest, "requested report does not exist")
		}
		return errorResponse(http.StatusBadRequest, "report request failed: "+err.Error())
	}

	a.logger.Info(2846, "report sent", logFields)
	return userver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIReportResponse{
			Status:  schema.APIStatusOK,
			Code:    http.StatusOK,
			Details: "report attached",
			Report:  report}}
}
