/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package ping

import (
	"github.com/spf13/cobra"

	"github.com/neuroinfo/dwiqc/cli/communications"
	"github.com/neuroinfo/dwiqc/cli/display"
	"github.com/neuroinfo/dwiqc/cli/login"
	"github.com/neuroinfo/dwiqc/common/schema"
)

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "ping the server",
		Long:  "ping the server, which also requires login",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute()
		},
	}
}

func execute() error {

	// Create communications object
	c := communications.New(login.Login())

	// Send the request to the server and display the result
	display.ErrorWrapper(display.AnyResp(c.Get(schema.EndpointPing)))
	return nil
}
