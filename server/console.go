/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package main

import (
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/neuroinfo/dwiqc/common/null"
	"github.com/neuroinfo/dwiqc/common/schema"
	"github.com/neuroinfo/dwiqc/server/data"
	"github.com/neuroinfo/dwiqc/server/global"
)

func launch() {

	// Check if arguments were passed
	if len(os.Args) == 1 {
		// If no arguments, start the service
		startService(true)
	} else {
		// Launch in interactive mode
		console()
		exit(0, false)
	}
}

// console runs one command given on the command line
func console() {
	fmt.Println("")

	if len(os.Args) < 2 {
		usage()
		return
	}

	switch strings.ToLower(os.Args[1]) {

	case "admin", "user":
		if len(os.Args) != 4 {
			fmt.Printf("Usage: %s <username> <password>\n", os.Args[1])
			return
		}

		role := schema.RoleUser
		if strings.ToLower(os.Args[1]) == "admin" {
			role = schema.RoleSuperAdmin
		}

		withData(func(d *data.Data) error {
			if err := d.SetAuth(os.Args[2], os.Args[3], role); err != nil {
				return fmt.Errorf("error setting user: %w", err)
			}
			fmt.Printf("Password set for %s \"%s\"\n", schema.RoleName(role), os.Args[2])
			return nil
		})

	case "grant", "revoke":
		if len(os.Args) != 4 {
			fmt.Printf("Usage: %s <username> <project>\n", os.Args[1])
			return
		}

		withData(func(d *data.Data) error {
			change := d.Revoke
			if strings.ToLower(os.Args[1]) == "grant" {
				change = d.Grant
			}
			if err := change(os.Args[2], os.Args[3]); err != nil {
				return err
			}
			meta, err := d.User(os.Args[2])
			if err != nil {
				return err
			}
			fmt.Printf("User \"%s\" can read projects: %s\n", meta.User, strings.Join(meta.Projects, ", "))
			return nil
		})

	case "import":
		if len(os.Args) != 3 {
			fmt.Println("Usage: import <artifacts directory>")
			return
		}

		withData(func(d *data.Data) error {
			dwiqc, err := d.ImportArtifacts(os.Args[2])
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			fmt.Printf("Imported %s (project %s) with %d resources\n", dwiqc.ID, dwiqc.Project, len(dwiqc.OutFile))
			fmt.Printf("Report: %s\n", d.ReportURL(dwiqc.ID))
			return nil
		})

	case "config":
		var err error
		conf, err = global.Config()
		if err != nil {
			fmt.Printf("Fatal config error: %v\n", err)
			return
		}
		out, err := conf.C.Dump()
		if err != nil {
			fmt.Printf("Error: %s\n", err.Error())
			return
		}
		fmt.Println(out)

	case "foreground":
		startService(false)

	case "listen":
		if len(os.Args) != 3 {
			fmt.Println("Usage: listen <address>")
			fmt.Println("Example: dwiqc-server listen 127.0.0.1:8080")
			return
		}

		address := os.Args[2]
		if _, err := net.ResolveTCPAddr("tcp", address); err != nil {
			fmt.Printf("Invalid listen address: %v\n", err)
			return
		}

		global.ListenOverride = address
		startService(false)

	default:
		usage()
	}
}

// withData loads the configuration and opens the database for a
// console command. The configuration is saved afterwards so that a
// generated JWT key persists.
func withData(f func(d *data.Data) error) {
	var err error

	// Load or create configuration file
	conf, err = global.Config()
	if err != nil {
		fmt.Printf("Fatal config error: %v\n", err)
		return
	}

	d, err := data.New(conf, null.Logger())
	if err != nil {
		fmt.Printf("Data error: %s\n", err.Error())
		return
	}
	defer d.Close()

	if err = f(d); err != nil {
		fmt.Printf("Error: %s\n", err.Error())
	}

	if err = conf.Checkpoint(); err != nil {
		fmt.Printf("Error saving configuration: %s\n", err.Error())
	}
}

func usage() {
	fmt.Printf("Usage: %s <foreground | listen <address> | admin <user> <pass> | user <user> <pass> | grant <user> <project> | revoke <user> <project> | import <dir> | config | version>\n", os.Args[0])
}
