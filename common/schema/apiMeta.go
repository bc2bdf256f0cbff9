//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package schema

const (
	EndpointPing       = "/api/v1/ping"
	EndpointRefresh    = "/api/v1/refresh"
	EndpointLogin      = "/api/v1/login"
	EndpointReport     = "/api/v1/report"
	EndpointAssessment = "/api/v1/assessment"
	EndpointUser       = "/api/v1/user"
	EndpointScreen     = "/app/report"
	EndpointFiles      = "/files"
)

const (
	APIStatusOK      = "ok"
	APIStatusError   = "error"
	APIStatusExpired = "expired"
)

// AuthCookie carries the access token for browsers viewing report screens
const AuthCookie = "dwiqc_token"

// XSI types of stored items
const (
	XSITypeDwiqc = "neuroinfo:dwiqc"
)
