/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package communications

import (
	"github.com/neuroinfo/dwiqc/cli/util"
)

// Get sends a GET request to the specified endpoint and returns the response body.
func (c *Communications) Get(endpoint string) (int, []byte, error) {
	return c.sendRequest("GET", endpoint, nil)
}

// GetQuery sends a GET request with the pairs as query parameters
func (c *Communications) GetQuery(endpoint string, pairs util.Pairs) (int, []byte, error) {
	if len(pairs) > 0 {
		endpoint += "?" + pairs.Values().Encode()
	}
	return c.sendRequest("GET", endpoint, nil)
}
