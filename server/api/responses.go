/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package api

import (
	"net/http"

	"github.com/neuroinfo/dwiqc/common/fields"
	"github.com/neuroinfo/dwiqc/common/schema"
	"github.com/neuroinfo/dwiqc/common/userver"
)

// maxRequestBody limits JSON request bodies
const maxRequestBody = 64 * 1024

// errorResponse returns the JSON error body documented for code
func errorResponse(code int, details string) userver.JResponse {
	var body any
	switch code {
	case http.StatusBadRequest:
		body = schema.API400{Status: schema.APIStatusError, Code: code, Details: details}
	case http.StatusForbidden:
		body = schema.API403{Status: schema.APIStatusError, Code: code, Details: details}
	case http.StatusNotFound:
		body = schema.API404{Status: schema.APIStatusError, Code: code, Details: details}
	default:
		code = http.StatusInternalServerError
		body = schema.API500{Status: schema.APIStatusError, Code: code, Details: details}
	}
	return userver.JResponse{HTTPCode: code, JSONData: body}
}

// callerFields starts the log fields shared by authenticated handlers
func callerFields(req *http.Request) *fields.Fields {
	who := GetAuthDetails(req)
	return fields.NewFields(
		fields.NewField("src_ip", userver.RemoteIP(req)),
		fields.NewField("id", who.ID),
		fields.NewField("role", who.Role))
}
