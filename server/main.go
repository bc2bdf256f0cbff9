//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/neuroinfo/dwiqc/common"
	"github.com/neuroinfo/dwiqc/common/interfaces"
	"github.com/neuroinfo/dwiqc/common/ulogger"
	"github.com/neuroinfo/dwiqc/common/uservice"
	"github.com/neuroinfo/dwiqc/server/api"
	"github.com/neuroinfo/dwiqc/server/global"
)

// @title DWIQC-Server
// @version 0.1
// @description DWIQC Report Server
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

var conf *global.ServerConfig
var logger interfaces.Logger
var apiInstance *api.API

func main() {

	// Check for version request
	if len(os.Args) == 2 {
		if strings.ToLower(os.Args[1]) == "version" {
			common.Banner(global.Description, global.Version, global.Build)
			exit(0, false)
		}
	}

	// launch() calls startService() or console() in console.go
	launch()
}

func exit(code int, delay bool) {
	if delay {
		fmt.Printf("\nExiting with code %d in %d seconds...\n\n", code, global.ConsoleExitDelay)
		time.Sleep(global.ConsoleExitDelay * time.Second)
	} else {
		fmt.Printf("\nExiting with code %d\n\n", code)
	}
	os.Exit(code)
}

func startService(daemon bool) {
	var err error

	// Load the configuration
	conf, err = global.Config()
	if err != nil {
		// Try to create a logger and write the fatal error
		var loggerErr error
		logger, loggerErr = ulogger.New(
			ulogger.WithPrefix(global.LogName),
			ulogger.WithLogFile(global.DefaultLog()),
			ulogger.WithLogStdout(true),
			ulogger.WithRetention(0),
			ulogger.WithDebug(global.Debug))

		if loggerErr != nil {
			fmt.Printf("Fatal logger error: %s\n", err.Error())
			exit(1, false)
		}
		logger.Fatalf(1001, "unable to load or create config: %s", err.Error())
		exit(1, false)
	}

	// Create a logger using the loaded configuration
	logger, err = ulogger.New(
		ulogger.WithPrefix(global.LogName),
		ulogger.WithLogFile(conf.SC.Get(global.ConfigLogFile).String()),
		ulogger.WithLogStdout(conf.SC.Get(global.ConfigLogStdout).Bool() || !daemon),
		ulogger.WithRetention(conf.SC.Get(global.ConfigLogRetention).Int()),
		ulogger.WithDebug(global.Debug))

	if err != nil {
		fmt.Printf("error creating logger: %v\n", err)
		exit(1, false)
	}

	// The same signal driven service runs in both modes. Foreground
	// only differs in logging to the console.
	s, err := uservice.New(
		uservice.WithServiceName(global.Name),
		uservice.WithServiceVersion(global.Version),
		uservice.WithServiceBuild(global.Build),
		uservice.WithLogger(logger),
		uservice.WithTaskTicker(global.TaskTicker),
		uservice.WithBackgroundFunc(ServiceBackground),
		uservice.WithTasksFunc(ServiceTasks),
		uservice.WithStopFunc(ServiceStopping),
		uservice.WithSEid(1500))

	if err != nil {
		logger.Fatalf(1005, "unable to create service: %s", err.Error())
		exit(1, false)
	}

	err = s.Start()
	if err != nil {
		logger.Fatalf(1006, "service failed to start: %s", err.Error())
		exit(1, false)
	}
}

// ServiceBackground will be launched as a goroutine when the service starts
func ServiceBackground(logger interfaces.Logger) {
	logger.Infof(2000, "Starting background processes including API")

	// Start the API
	apiInstance = api.New(conf, logger)
	go apiInstance.Start()
}

// ServiceTasks will be called at the interval specified by TaskTicker
func ServiceTasks(_ interfaces.Logger) {
	apiInstance.Tasks()
}

// ServiceStopping is called when the service is about to exit
func ServiceStopping(logger interfaces.Logger) {
	apiInstance.Stop()
	apiInstance.Close()

	// Save the configuration
	err := conf.Checkpoint()
	if err != nil {
		logger.Infof(1007, "error saving configuration: %s", err.Error())
	}
}
