/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"github.com/neuroinfo/dwiqc/common/interfaces"
)

const (
	ConfigServerSet          = "server_config"
	ConfigLogFile            = "log_file"
	ConfigLogStdout          = "log_stdout"
	ConfigLogRetention       = "log_retention"
	ConfigListen             = "listen"
	ConfigExternalURL        = "external_url"
	ConfigDataPath           = "data_path"
	ConfigFilesPath          = "files_path"
	ConfigDBPath             = "db_path"
	ConfigHTTPTimeout        = "http_timeout"
	ConfigHTTPIdleTimeout    = "http_idle_timeout"
	ConfigMaxConcurrent      = "max_concurrent"
	ConfigPenaltyBoxMin      = "penalty_box_min"
	ConfigPenaltyBoxMax      = "penalty_box_max"
	ConfigHandlerTimeout     = "handler_timeout"
	ConfigAccessTokenLife    = "access_token_life"
	ConfigRefreshTokenLife   = "refresh_token_life"
	ConfigAuthorizedAdminIPs = "authorized_admin_ips"

	ConfigPrivate = "server_private"
	ConfigJWTKey  = "jwt_key"
)

// setDefaults makes sure the sets exist and sets defaults and constraints
func setDefaults(c interfaces.Config) (interfaces.Parameters, interfaces.Parameters) {
	sc := c.NewSet(ConfigServerSet)
	sc.SetConstraint(ConfigLogFile, 0, 0, "")
	sc.SetConstraint(ConfigLogStdout, 0, 0, true)
	sc.SetConstraint(ConfigLogRetention, 1, 3650, 365)                 // days
	sc.SetConstraint(ConfigListen, 0, 0, "127.0.0.1:8080")             // listen address
	sc.SetConstraint(ConfigExternalURL, 0, 0, "http://127.0.0.1:8080") // should be an FQDN in production
	sc.SetConstraint(ConfigDataPath, 0, 0, "")
	sc.SetConstraint(ConfigFilesPath, 0, 0, "")
	sc.SetConstraint(ConfigDBPath, 0, 0, "")
	sc.SetConstraint(ConfigHTTPTimeout, 1, 300, 30)          // seconds
	sc.SetConstraint(ConfigHTTPIdleTimeout, 1, 300, 30)      // seconds
	sc.SetConstraint(ConfigMaxConcurrent, 0, 10000, 100)     // connections beyond this wait
	sc.SetConstraint(ConfigPenaltyBoxMin, 0, 60000, 1000)    // milliseconds
	sc.SetConstraint(ConfigPenaltyBoxMax, 0, 60000, 5000)    // milliseconds
	sc.SetConstraint(ConfigHandlerTimeout, 1, 300, 30)       // seconds
	sc.SetConstraint(ConfigAccessTokenLife, 1, 10080, 720)   // minutes
	sc.SetConstraint(ConfigRefreshTokenLife, 1, 43200, 1440) // minutes
	sc.SetConstraint(ConfigAuthorizedAdminIPs, 0, 0, "127.0.0.1")

	sp := c.NewSet(ConfigPrivate)
	sp.SetConstraint(ConfigJWTKey, 0, 0, "")

	return sc, sp
}

// DefaultLog is used when no log directory can be created under the data path
func DefaultLog() string {
	return "/var/log/" + LogName + ".log"
}
