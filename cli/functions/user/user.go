/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package user

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/neuroinfo/dwiqc/cli/communications"
	"github.com/neuroinfo/dwiqc/cli/display"
	"github.com/neuroinfo/dwiqc/cli/login"
	"github.com/neuroinfo/dwiqc/common/schema"
)

func Register() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "user management functions",
		Long:  "show users and manage their project access (administrators only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("a subcommand is required\n")
			}
			return fmt.Errorf("unknown subcommand: %s\n", args[0])
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <user>",
		Short: "show a user",
		Long:  "show a user's role and project grants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := communications.New(login.Login())
			display.ErrorWrapper(display.AnyResp(c.Get(schema.EndpointUser + "/" + url.PathEscape(args[0]))))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "grant <user> <project>",
		Short: "grant project access",
		Long:  "allow a user to read the assessments of a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := communications.New(login.Login())
			display.ErrorWrapper(display.AnyResp(c.Put(grantEndpoint(args[0], args[1]), nil)))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "revoke <user> <project>",
		Short: "revoke project access",
		Long:  "remove a user's access to a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := communications.New(login.Login())
			display.ErrorWrapper(display.AnyResp(c.Delete(grantEndpoint(args[0], args[1]))))
			return nil
		},
	})

	return cmd
}

func grantEndpoint(user, project string) string {
	return schema.EndpointUser + "/" + url.PathEscape(user) + "/grant/" + url.PathEscape(project)
}
