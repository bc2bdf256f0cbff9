/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package userver

import (
	"encoding/json"
	"net/http"

	"github.com/neuroinfo/dwiqc/common/fields"
)

// JWrapper adapts a JHandler to a http.Handler, marshalling the
// returned data to JSON and logging write errors
func (s *HServer) JWrapper(name string, h JHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		resp := h(req)

		for _, c := range resp.Cookies {
			http.SetCookie(w, c)
		}

		w.Header().Set("Content-Type", "application/json; charset=UTF-8")
		w.WriteHeader(resp.HTTPCode)
		if err := json.NewEncoder(w).Encode(resp.JSONData); err != nil {
			s.Logger.Error(s.SEid+11,
				"error writing response",
				fields.NewFields(
					fields.NewField("error", err.Error()),
					fields.NewField("src_ip", RemoteIP(req)),
					fields.NewField("uri", stripQuery(req.RequestURI)),
					fields.NewField("handler", name)))
		}
	})
}
