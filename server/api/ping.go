//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package api

import (
	"net/http"

	"github.com/neuroinfo/dwiqc/common/schema"
	"github.com/neuroinfo/dwiqc/common/userver"
	"github.com/neuroinfo/dwiqc/server/global"
)

// @Summary Ping the server
// @Description Tests authentication and reports the server version and the caller's role
// @Security BearerAuth
// @Produce json
// @Tags Testing
// @Success 200 {object} schema.APIPingResponse
// @Failure 401 {object} schema.API401
// @Router /ping [get]
func (a *API) getPing(req *http.Request) userver.JResponse {
	who := GetAuthDetails(req)
	a.logger.Info(2891, "ping", callerFields(req))

	return userver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIPingResponse{
			Status:  schema.APIStatusOK,
			Code:    http.StatusOK,
			Details: "pong",
			Data: schema.PingInfo{
				Server:  global.Name,
				Version: global.Version,
				User:    who.ID,
				Role:    schema.RoleName(who.Role)}}}
}
