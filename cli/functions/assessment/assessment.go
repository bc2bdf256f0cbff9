/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package assessment

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/neuroinfo/dwiqc/cli/communications"
	"github.com/neuroinfo/dwiqc/cli/display"
	"github.com/neuroinfo/dwiqc/cli/login"
	"github.com/neuroinfo/dwiqc/cli/util"
	"github.com/neuroinfo/dwiqc/common/schema"
)

func Register() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assessment",
		Aliases: []string{"assessments"},
		Short:   "assessment functions",
		Long:    "list, show and delete DWIQC assessments",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("a subcommand is required\n")
			}
			return fmt.Errorf("unknown subcommand: %s\n", args[0])
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list [project=<project>]",
		Short: "list assessments",
		Long:  "list the assessments you can read, optionally limited to one project",
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := util.ParsePairs(args)
			if err != nil {
				return err
			}
			c := communications.New(login.Login())
			display.ErrorWrapper(display.AssessmentList(c.GetQuery(schema.EndpointAssessment, pairs)))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "show an assessment",
		Long:  "show an assessment including its metrics and resources",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := communications.New(login.Login())
			display.ErrorWrapper(display.AnyResp(c.Get(Endpoint(args[0]))))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "delete an assessment",
		Long:  "delete an assessment and its files (administrators only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := communications.New(login.Login())
			display.ErrorWrapper(display.AnyResp(c.Delete(Endpoint(args[0]))))
			return nil
		},
	})

	return cmd
}

// Endpoint returns the API path of one assessment
func Endpoint(id string) string {
	return schema.EndpointAssessment + "/" + url.PathEscape(id)
}
