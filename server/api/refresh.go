/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/neuroinfo/dwiqc/common/fields"
	"github.com/neuroinfo/dwiqc/common/schema"
	"github.com/neuroinfo/dwiqc/common/userver"
)

// @Summary Refresh token
// @Description Exchanges a refresh token for a new access token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param refreshRequest body schema.RefreshRequest true "Refresh request"
// @Success 200 {object} schema.APITokenRefreshResponse
// @Failure 401 {object} schema.API401
// @Router /refresh [post]
func (a *API) postRefresh(req *http.Request) userver.JResponse {

	remoteIP := userver.RemoteIP(req)

	// Get the JSON post data
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return failureResponse
	}

	// Deserialize the JSON
	var refreshRequest schema.RefreshRequest
	err = json.Unmarshal(body, &refreshRequest)
	if err != nil {
		return failureResponse
	}

	// Information to be logged as fields
	logInfo := fields.NewFields(
		fields.NewField("src_ip", remoteIP))

	accessToken, err := a.data.RefreshToken(refreshRequest.RefreshToken)
	if err != nil {
		logInfo.Append(fields.NewField("refresh-result", "failed"), fields.NewField("error", err.Error()))
		a.logger.Error(2865, "access token refresh failed", logInfo)
		return failureResponse
	}

	logInfo.Append(fields.NewField("refresh-result", "success"))
	a.logger.Info(2866, "successful access token refresh", logInfo)

	return userver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APITokenRefreshResponse{
			Status:      schema.APIStatusOK,
			Code:        http.StatusOK,
			AccessToken: accessToken},
		Cookies: []*http.Cookie{a.authCookie(accessToken)}}
}
