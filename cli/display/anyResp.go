/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package display

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/neuroinfo/dwiqc/cli/credentials"
	"github.com/neuroinfo/dwiqc/common"
	"github.com/neuroinfo/dwiqc/common/schema"
)

const maxRawBody = 2048

// AnyResp prints any server response to stdout and forgets an expired
// access token
func AnyResp(statusCode int, data []byte, err error) error {
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	return WriteAnyResp(os.Stdout, statusCode, data)
}

// WriteAnyResp writes the status line and the indented JSON body. A body
// that is not JSON, such as an error page from a proxy, is shown as text.
func WriteAnyResp(w io.Writer, statusCode int, data []byte) error {
	_, _ = fmt.Fprintf(w, "\nServer response: HTTP %d %s\n", statusCode, http.StatusText(statusCode))

	var resp schema.APIAnyResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		if len(data) > 0 {
			_, _ = fmt.Fprintln(w, common.Truncate(common.SingleLine(string(data)), maxRawBody))
		}
		if statusCode >= http.StatusBadRequest {
			return fmt.Errorf("server returned HTTP %d", statusCode)
		}
		return nil
	}

	if resp.Status == schema.APIStatusExpired {
		credentials.AccessExpired()
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("formatting response: %w", err)
	}
	_, _ = fmt.Fprintln(w, string(out))
	return nil
}
