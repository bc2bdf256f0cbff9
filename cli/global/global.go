/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import "github.com/neuroinfo/dwiqc/common"

//goland:noinspection GoUnusedConst
const (
	Version         = common.Version
	Build           = common.Build
	Name            = "DWIQCCLI"
	Description     = "DWIQC CLI"
	LongDescription = "command line interface for the DWIQC report server"
	Copyright       = "Copyright (c) 2024-2026 Tenebris Technologies Inc."
	EnvFile         = ".dwiqc"
	TokenFile       = ".dwiqc-token"
	EnvUser         = "DWIQC_USER"
	EnvPass         = "DWIQC_PASS"
	EnvServer       = "DWIQC_SERVER"
)

var ServerURL string
