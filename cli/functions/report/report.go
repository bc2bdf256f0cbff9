//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// See LICENSE file for details
//

package report

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neuroinfo/dwiqc/cli/communications"
	"github.com/neuroinfo/dwiqc/cli/display"
	"github.com/neuroinfo/dwiqc/cli/login"
	"github.com/neuroinfo/dwiqc/cli/util"
	"github.com/neuroinfo/dwiqc/common/schema"
)

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "report <report name> [key=value ...]",
		Short: "request report",
		Long:  "request the specified report (" + strings.Join(schema.ReportNames(), ", ") + ")",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("A report name is required\n")
			}

			pairs, err := util.ParsePairs(args[1:])
			if err != nil {
				return err
			}

			// Catch mistakes before logging in
			if err = schema.ValidateReport(args[0], pairs); err != nil {
				return err
			}
			execute(args[0], pairs)
			return nil
		},
	}
}

func execute(name string, pairs util.Pairs) {

	// Create communications object
	c := communications.New(login.Login())

	req := schema.ReportRequest{
		Report:     name,
		Parameters: pairs,
	}

	// Post the request to the server and display the result
	display.ErrorWrapper(display.ReportResp(c.Post(schema.EndpointReport, req)))
}
