/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type ReportRequest struct {
	Report     string            `json:"report"`
	Parameters map[string]string `json:"parameters"`
}

const (
	TokenPurposeAccess  = "access"
	TokenPurposeRefresh = "refresh"
)

// AuthInfo describes the authenticated caller of a request
type AuthInfo struct {
	ID            string // authenticated user or ""
	Role          int    // authenticated role or RoleNone
	Authenticated bool
}

func (a AuthInfo) IsAuthenticated() bool {
	return a.Authenticated
}
