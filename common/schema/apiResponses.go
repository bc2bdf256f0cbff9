/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

// All API 4xx and 5xx responses share one structure. The separate types
// document the expected details for each code.

type APIAnyResponse struct {
	Status       string `json:"status"`
	Code         int    `json:"code"`
	Details      string `json:"details,omitempty"`
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Report       Report `json:"report,omitempty"`
	Data         any    `json:"data,omitempty"`
}

type API400 struct {
	Status  string `json:"status" example:"error"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details" example:"bad request"`
}

type API401 struct {
	Status  string `json:"status" example:"error"`
	Code    int    `json:"code" example:"401"`
	Details string `json:"details" example:"authentication failed"`
}

type API403 struct {
	Status  string `json:"status" example:"error"`
	Code    int    `json:"code" example:"403"`
	Details string `json:"details" example:"access denied"`
}

type API404 struct {
	Status  string `json:"status" example:"error"`
	Code    int    `json:"code" example:"404"`
	Details string `json:"details" example:"object not found"`
}

type API500 struct {
	Status  string `json:"status" example:"error"`
	Code    int    `json:"code" example:"500"`
	Details string `json:"details" example:"internal server error"`
}

// APIGenericResponse is used for successful responses that don't require a specific structure
type APIGenericResponse struct {
	Status  string `json:"status" example:"ok"`
	Code    int    `json:"code" example:"200"`
	Details string `json:"details,omitempty" example:"request processed"`
}

// PingInfo identifies the server and the caller it authenticated
type PingInfo struct {
	Server  string `json:"server" example:"DWIQCServer"`
	Version string `json:"version" example:"0.3.1"`
	User    string `json:"user" example:"bob"`
	Role    string `json:"role" example:"user"`
}

type APIPingResponse struct {
	Status  string   `json:"status" example:"ok"`
	Code    int      `json:"code" example:"200"`
	Details string   `json:"details,omitempty" example:"pong"`
	Data    PingInfo `json:"data"`
}

type APILoginResponse struct {
	Status       string `json:"status" example:"ok"`
	Code         int    `json:"code" example:"200"`
	AccessToken  string `json:"access_token,omitempty" example:"jwt"`
	RefreshToken string `json:"refresh_token,omitempty" example:"jwt"`
}

type APITokenRefreshResponse struct {
	Status      string `json:"status" example:"ok"`
	Code        int    `json:"code" example:"200"`
	AccessToken string `json:"access_token,omitempty" example:"jwt"`
}

// APIReportResponse is used by the API to respond to a report request
type APIReportResponse struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Details string `json:"details,omitempty"`
	Report  Report `json:"report"`
}

// APIAssessmentListResponse lists the assessments visible to the caller
type APIAssessmentListResponse struct {
	Status  string          `json:"status" example:"ok"`
	Code    int             `json:"code" example:"200"`
	Details string          `json:"details,omitempty"`
	Data    []AssessmentRef `json:"data"`
}

// APIAssessmentResponse returns one assessment
type APIAssessmentResponse struct {
	Status  string `json:"status" example:"ok"`
	Code    int    `json:"code" example:"200"`
	Details string `json:"details,omitempty"`
	Data    *Dwiqc `json:"data"`
}

// APIFileMapResponse returns the label to URI map of an assessment
type APIFileMapResponse struct {
	Status  string            `json:"status" example:"ok"`
	Code    int               `json:"code" example:"200"`
	Details string            `json:"details,omitempty"`
	Data    map[string]string `json:"data"`
}

// APIUserResponse returns one account and its project grants
type APIUserResponse struct {
	Status  string   `json:"status" example:"ok"`
	Code    int      `json:"code" example:"200"`
	Details string   `json:"details,omitempty"`
	Data    UserMeta `json:"data"`
}
