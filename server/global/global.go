//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// See LICENSE file for details
//

package global

import "github.com/neuroinfo/dwiqc/common"

const (
	Version          = common.Version
	Build            = common.Build
	Name             = "DWIQCServer"
	LogName          = "dwiqc-server"
	Description      = "DWIQC Report Server"
	UnixBinaryName   = "dwiqc-server"
	FileDirPattern   = "/files/" // URL pattern for file downloads
	TaskTicker       = 60        // seconds between task runs
	ConsoleExitDelay = 2         // seconds to wait so that user can read the console output when exiting
	TokenLength      = 64        // length of the JWT key prior to base-64 encoding
	ChecksumCacheTTL = 600       // seconds a file checksum stays cached
	ConfigEnv        = "DWIQC_CONFIG"
)

var (
	UnixConfigFiles      = []string{"/etc/dwiqc-server.conf", "/usr/local/etc/dwiqc-server.conf"}
	UnixDefaultDataPaths = []string{"/var/lib/dwiqc-server", "/opt/dwiqc-server", "/usr/local/dwiqc-server"}
	Debug                = false
	ListenOverride       = ""
)
