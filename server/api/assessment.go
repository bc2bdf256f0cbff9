/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/neuroinfo/dwiqc/common/fields"
	"github.com/neuroinfo/dwiqc/common/schema"
	"github.com/neuroinfo/dwiqc/common/userver"
	"github.com/neuroinfo/dwiqc/server/screens"
)

// @Summary List assessments
// @Description Lists the assessments the caller may read
// @Tags Assessments
// @Security BearerAuth
// @Produce json
// @Param project query string false "Limit to one project"
// @Success 200 {object} schema.APIAssessmentListResponse
// @Failure 401 {object} schema.API401
// @Failure 500 {object} schema.API500
// @Router /assessment [get]
func (a *API) getAssessments(req *http.Request) userver.JResponse {
	authDetails := GetAuthDetails(req)
	project := userver.GetQuery(req, "project")
	logFields := callerFields(req)
	logFields.Append(fields.NewField("project", project))

	refs, err := a.data.ListAssessments(authDetails, project)
	if err != nil {
		a.logger.Error(2601, fmt.Sprintf("error listing assessments: %s", err.Error()), logFields)
		return errorResponse(http.StatusInternalServerError, "error listing assessments")
	}

	a.logger.Info(2602, "assessments listed", logFields)
	return userver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIAssessmentListResponse{Status: schema.APIStatusOK, Code: http.StatusOK, Data: refs}}
}

// @Summary Get assessment
// @Description Returns one DWIQC assessment
// @Tags Assessments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} schema.APIAssessmentResponse
// @Failure 401 {object} schema.API401
// @Failure 403 {object} schema.API403
// @Failure 404 {object} schema.API404
// @Router /assessment/{id} [get]
func (a *API) getAssessment(req *http.Request) userver.JResponse {
	authDetails := GetAuthDetails(req)
	id := userver.GetParam(req, "id")
	logFields := callerFields(req)
	logFields.Append(fields.NewField("assessment", id))

	d, err := a.data.Assessment(authDetails, id)
	if err != nil {
		return a.itemError(2603, err, logFields)
	}

	a.logger.Info(2604, "assessment retrieved", logFields)
	return userver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIAssessmentResponse{Status: schema.APIStatusOK, Code: http.StatusOK, Data: d}}
}

// @Summary Delete assessment
// @Description Deletes an assessment and its files
// @Tags Assessments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} schema.APIGenericResponse
// @Failure 401 {object} schema.API401
// @Failure 404 {object} schema.API404
// @Router /assessment/{id} [delete]
func (a *API) deleteAssessment(req *http.Request) userver.JResponse {
	id := userver.GetParam(req, "id")
	logFields := callerFields(req)
	logFields.Append(fields.NewField("assessment", id))

	if err := a.data.DeleteAssessment(id); err != nil {
		return a.itemError(2605, err, logFields)
	}

	a.logger.Info(2606, "assessment deleted", logFields)
	return userver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIGenericResponse{Status: schema.APIStatusOK, Code: http.StatusOK, Details: "assessment deleted"}}
}

// @Summary Assessment files
// @Description Returns the label to URI map of the assessment's direct file resources
// @Tags Assessments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} schema.APIFileMapResponse
// @Failure 401 {object} schema.API401
// @Failure 403 {object} schema.API403
// @Failure 404 {object} schema.API404
// @Failure 500 {object} schema.API500
// @Router /assessment/{id}/files [get]
func (a *API) getAssessmentFiles(req *http.Request) userver.JResponse {
	authDetails := GetAuthDetails(req)
	id := userver.GetParam(req, "id")
	logFields := callerFields(req)
	logFields.Append(fields.NewField("assessment", id))

	d, err := a.data.Assessment(authDetails, id)
	if err != nil {
		return a.itemError(2607, err, logFields)
	}

	fileMap, err := screens.FileMap(d.OutFile)
	if err != nil {
		return a.itemError(2607, err, logFields)
	}

	a.logger.Info(2608, "assessment files listed", logFields)
	return userver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIFileMapResponse{Status: schema.APIStatusOK, Code: http.StatusOK, Data: fileMap}}
}

// itemError logs an item access error and maps it to a response
func (a *API) itemError(eid uint32, err error, logFields *fields.Fields) userver.JResponse {
	logFields.Append(fields.NewField("error", err.Error()))

	switch {
	case errors.Is(err, schema.ErrNotFound):
		a.logger.Info(eid, "assessment not found", logFields)
		return errorResponse(http.StatusNotFound, "assessment not found")
	case errors.Is(err, schema.ErrNotDwiqc):
		a.logger.Info(eid, "item is not a DWIQC assessment", logFields)
		return errorResponse(http.StatusNotFound, "assessment not found")
	case errors.Is(err, schema.ErrAccessDenied):
		a.logger.Warning(eid, "assessment access denied", logFields)
		return errorResponse(http.StatusForbidden, "access denied")
	}

	a.logger.Error(eid, "assessment error", logFields)
	return errorResponse(http.StatusInternalServerError, "internal server error")
}
