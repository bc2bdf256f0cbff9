/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package communications

import (
	"net/http"
	"time"

	"github.com/neuroinfo/dwiqc/cli/global"
)

const requestTimeout = 60 * time.Second

var _ global.Comms = &Communications{}

// Communications talks to the server named by global.ServerURL
type Communications struct {
	token     string
	client    *http.Client
	userAgent string
}

// New returns a Communications object, optionally authenticated with token
func New(token ...string) global.Comms {
	c := &Communications{
		client:    &http.Client{Timeout: requestTimeout},
		userAgent: global.Name + "/" + global.Version,
	}
	if len(token) > 0 {
		c.token = token[0]
	}
	return c
}

func (c *Communications) SetToken(token string) {
	c.token = token
}
