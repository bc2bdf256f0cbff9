//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/neuroinfo/dwiqc/common/fields"
	"github.com/neuroinfo/dwiqc/common/schema"
	"github.com/neuroinfo/dwiqc/common/userver"
	"github.com/neuroinfo/dwiqc/server/global"
)

// NewAuthFunc returns an AuthFunc with acceptable roles set. On success
// the request carries a schema.AuthInfo.
func (a *API) NewAuthFunc(acceptableRoles []int) userver.AuthFunc {
	return func(ip, authHeader string) (bool, []byte, any) {

		authFail := schema.AuthInfo{
			ID:            "",
			Role:          schema.RoleNone,
			Authenticated: false}

		// Set up log fields of interest
		logFields := fields.NewFields(fields.NewField("src_ip", ip))

		// Fail if either IP or Authorization header is missing
		if ip == "" || authHeader == "" {
			a.logger.Warning(2831, "authentication failure: missing IP or Authorization header", logFields)
			return false, a.AuthFailMessage(false), authFail
		}

		// Check if the header starts with "Bearer "
		if !strings.HasPrefix(authHeader, "Bearer ") {
			a.logger.Warning(2832, "authentication failure: invalid Authorization header format", logFields)
			return false, a.AuthFailMessage(false), authFail
		}

		// Extract the token from the header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the access token
		user, role, err := a.data.ValidateToken(tokenString, schema.TokenPurposeAccess)
		if err != nil {

			// Check if the token is expired
			if errors.Is(err, jwt.ErrTokenExpired) {
				a.logger.Info(2833, fmt.Sprintf("authentication expired: %s", err.Error()), logFields)
				return false, a.AuthFailMessage(true), authFail
			}
			a.logger.Warning(2833, fmt.Sprintf("authentication failure: %s", err.Error()), logFields)
			return false, a.AuthFailMessage(false), authFail
		}

		// Add user and role to log fields
		logFields.Append(fields.NewField("id", user), fields.NewField("role", role))

		// If the user is an admin, check the list of authorized IP addresses
		if role == schema.RoleAdmin || role == schema.RoleSuperAdmin {
			if !a.AuthorizedAdminIP(ip) {
				a.logger.Info(2834, "authentication failure: IP not authorized", logFields)
				return false, a.AuthFailMessage(false), authFail
			}
		}

		// Check if the user's role is in the list of acceptable roles
		if slices.Contains(acceptableRoles, role) {
			a.logger.Debug(2835, "authentication success", logFields)
			return true, nil, schema.AuthInfo{ID: user, Role: role, Authenticated: true}
		}

		a.logger.Warning(2836, "authentication failure: role not authorized", logFields)
		return false, a.AuthFailMessage(false), authFail
	}
}

// AuthAdmins is a helper function that returns a list of admin roles
func (a *API) AuthAdmins() []int {
	return schema.RolesAdmins
}

// AuthAnyRole returns a list of all roles
func (a *API) AuthAnyRole() []int {
	return schema.RolesAll
}

// AuthFailMessage returns a generic response for authentication failures
// The only variation is for expired tokens
func (a *API) AuthFailMessage(expired bool) []byte {

	// Start with a standard auth failure response
	msg := authFailResponse

	// If expired, update the response
	if expired {
		msg.Details = "token expired"
		msg.Status = schema.APIStatusExpired
	}

	// Marshal the response
	response, err := json.Marshal(msg)
	if err != nil {
		a.logger.Error(2839, fmt.Sprintf("error marshalling failure response: %s", err.Error()), nil)
		return nil
	}
	return response
}

// GetAuthDetails returns the caller set by the auth wrapper
func GetAuthDetails(req *http.Request) schema.AuthInfo {
	details, ok := userver.AuthDetailsFrom(req).(schema.AuthInfo)
	if !ok {
		return schema.AuthInfo{Authenticated: false}
	}
	return details
}

func (a *API) AuthorizedAdminIP(ip string) bool {

	// Get the list of authorized IPs as a map for quick lookup
	authIPList := a.conf.SC.Get(global.ConfigAuthorizedAdminIPs).SplitMap()

	// An empty list means all IPs are authorized
	if len(authIPList) == 0 {
		return true
	}

	// Check if the IP is in the list
	if _, ok := authIPList[ip]; ok {
		return true
	}
	return false
}
