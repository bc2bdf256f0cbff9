/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package userver

import (
	"net/http"

	"github.com/gorilla/mux"
)

// GetParam returns a route variable or ""
func GetParam(r *http.Request, param string) string {
	vars := mux.Vars(r)
	if value, ok := vars[param]; ok {
		return value
	}
	return ""
}

// GetQuery returns the first value of a query parameter or ""
func GetQuery(r *http.Request, param string) string {
	return r.URL.Query().Get(param)
}
