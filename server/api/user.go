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
	"github.com/neuroinfo/dwiqc/server/db"
)

// @Summary Get user by ID
// @Description Retrieves the role and project grants of a user
// @Tags User management
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} schema.APIUserResponse
// @Failure 401 {object} schema.API401
// @Failure 404 {object} schema.API404
// @Failure 500 {object} schema.API500
// @Router /user/{id} [get]
func (a *API) getUser(req *http.Request) userver.JResponse {
	userID := userver.GetParam(req, "id")
	logFields := callerFields(req)
	logFields.Append(fields.NewField("user_id", userID))

	user, err := a.data.User(userID)
	if err != nil {
		return a.userError(3204, err, logFields)
	}

	a.logger.Info(3205, "user retrieved", logFields)
	return userver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIUserResponse{Status: schema.APIStatusOK, Code: http.StatusOK, Data: user}}
}

// @Summary Grant project access
// @Description Allows a user to read the assessments of a project
// @Tags User management
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Param project path string true "Project"
// @Success 200 {object} schema.APIGenericResponse
// @Failure 401 {object} schema.API401
// @Failure 404 {object} schema.API404
// @Router /user/{id}/grant/{project} [put]
func (a *API) putGrant(req *http.Request) userver.JResponse {
	return a.changeGrant(req, true)
}

// @Summary Revoke project access
// @Description Removes a user's access to a project
// @Tags User management
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Param project path string true "Project"
// @Success 200 {object} schema.APIGenericResponse
// @Failure 401 {object} schema.API401
// @Failure 404 {object} schema.API404
// @Router /user/{id}/grant/{project} [delete]
func (a *API) deleteGrant(req *http.Request) userver.JResponse {
	return a.changeGrant(req, false)
}

func (a *API) changeGrant(req *http.Request, grant bool) userver.JResponse {
	userID := userver.GetParam(req, "id")
	project := userver.GetParam(req, "project")
	logFields := callerFields(req)
	logFields.Append(
		fields.NewField("user_id", userID),
		fields.NewField("project", project))

	var err error
	details := "access granted"
	if grant {
		err = a.data.Grant(userID, project)
	} else {
		err = a.data.Revoke(userID, project)
		details = "access revoked"
	}
	if err != nil {
		return a.userError(3206, err, logFields)
	}

	a.logger.Info(3207, details, logFields)
	return userver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIGenericResponse{Status: schema.APIStatusOK, Code: http.StatusOK, Details: details}}
}

func (a *API) userError(eid uint32, err error, logFields *fields.Fields) userver.JResponse {
	if errors.Is(err, db.ErrUserNotFound) || errors.Is(err, schema.ErrNotFound) {
		a.logger.Info(eid, "user not found", logFields)
		return errorResponse(http.StatusNotFound, "user not found")
	}

	a.logger.Error(eid, fmt.Sprintf("user request failed: %s", err.Error()), logFields)
	return errorResponse(http.StatusInternalServerError, "user request failed")
}
