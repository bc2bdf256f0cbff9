//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// See LICENSE file for details
//

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neuroinfo/dwiqc/cli/functions/assessment"
	"github.com/neuroinfo/dwiqc/cli/functions/files"
	"github.com/neuroinfo/dwiqc/cli/functions/ping"
	"github.com/neuroinfo/dwiqc/cli/functions/report"
	"github.com/neuroinfo/dwiqc/cli/functions/user"
	"github.com/neuroinfo/dwiqc/cli/functions/version"
	"github.com/neuroinfo/dwiqc/cli/global"
)

func main() {
	var err error

	// Get the name of this binary, eliminating any path information
	progName := os.Args[0]
	progName = progName[strings.LastIndex(progName, "/")+1:]

	// Initialize the root command
	rootCmd := &cobra.Command{
		Use:   progName,
		Short: global.Description,
		Long:  global.LongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("A subcommand is required\n")
		},
	}

	// Disable completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add the functions
	rootCmd.AddCommand(assessment.Register())
	rootCmd.AddCommand(files.Register())
	rootCmd.AddCommand(ping.Register())
	rootCmd.AddCommand(report.Register())
	rootCmd.AddCommand(user.Register())
	rootCmd.AddCommand(version.Register())

	// Execute the CLI
	err = rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
