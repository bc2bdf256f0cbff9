//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/neuroinfo/dwiqc/common/interfaces"
	"github.com/neuroinfo/dwiqc/common/schema"
	"github.com/neuroinfo/dwiqc/common/userver"
	"github.com/neuroinfo/dwiqc/server/data"
	"github.com/neuroinfo/dwiqc/server/global"
	"github.com/neuroinfo/dwiqc/server/screens"
)

// stagingMaxAge is how long an abandoned import directory is kept
const stagingMaxAge = time.Hour

type API struct {
	logger interfaces.Logger
	conf   *global.ServerConfig
	data   *data.Data
	server *userver.HServer
}

func New(config *global.ServerConfig, logger interfaces.Logger) *API {
	return &API{logger: logger, conf: config}
}

func (a *API) Start() {
	var err error

	// Set up data access
	a.data, err = data.New(a.conf, a.logger)
	if err != nil {
		a.logger.Errorf(2004, "Data error: %s", err.Error())
		return
	}

	// Loop until stopped
	for {
		// Start the API
		a.logger.Infof(2001, "Starting API")
		err := a.startAPI()
		if err != nil {
			a.logger.Errorf(2003, "API error: %s", err.Error())
		} else {
			a.logger.Infof(2002, "API stopped")
			return
		}

		// Sleep before trying again
		time.Sleep(10 * time.Second)
	}
}

func (a *API) startAPI() error {

	// Obtain the listen address and check for command line override
	listen := a.conf.SC.Get(global.ConfigListen).String()
	if global.ListenOverride != "" {
		listen = global.ListenOverride
	}

	s, err := a.newServer(listen)
	if err != nil {
		return err
	}
	a.server = s

	// Start the server
	err = s.Start()
	if err != nil {
		return fmt.Errorf("userver Start(): %w", err)
	}
	return nil
}

// newServer creates the HTTP server with all routes added
func (a *API) newServer(listen string) (*userver.HServer, error) {
	anyRole := a.NewAuthFunc(a.AuthAnyRole())
	admins := a.NewAuthFunc(a.AuthAdmins())

	s, err := userver.New(
		userver.WithLogger(a.logger),
		userver.WithSEid(2500),
		userver.WithListen(listen),
		userver.WithHTTPTimeout(a.conf.SC.Get(global.ConfigHTTPTimeout).Int()),
		userver.WithHTTPIdleTimeout(a.conf.SC.Get(global.ConfigHTTPIdleTimeout).Int()),
		userver.WithHandlerTimeout(a.conf.SC.Get(global.ConfigHandlerTimeout).Int()),
		userver.WithMaxConcurrent(a.conf.SC.Get(global.ConfigMaxConcurrent).Int()),
		userver.WithPenaltyBox(
			a.conf.SC.Get(global.ConfigPenaltyBoxMin).Int(),
			a.conf.SC.Get(global.ConfigPenaltyBoxMax).Int()),
		userver.WithAuthCookie(schema.AuthCookie),
		userver.WithAuthFunc(anyRole),
		userver.WithFileDir(global.FileDirPattern, a.data.FilesPath(), anyRole),
		userver.WithFileAccess(func(req *http.Request, name string) bool {
			return a.data.FileAccess(GetAuthDetails(req), name)
		}))

	if err != nil {
		return nil, err
	}

	if s == nil {
		return nil, errors.New("userver.New() returned nil")
	}

	report, err := screens.NewSecureReport(a.data, screens.NewRegistry(), a.logger)
	if err != nil {
		return nil, fmt.Errorf("loading report screens: %w", err)
	}

	s.AddRoute(userver.Route{
		Name:     "ping",
		Methods:  []string{"GET"},
		Pattern:  schema.EndpointPing,
		JHandler: a.getPing,
		AuthFunc: anyRole})

	s.AddRoute(userver.Route{
		Name:     "login",
		Methods:  []string{"POST"},
		Pattern:  schema.EndpointLogin,
		JHandler: a.postLogin,
		AuthFunc: nil})

	s.AddRoute(userver.Route{
		Name:     "refresh",
		Methods:  []string{"POST"},
		Pattern:  schema.EndpointRefresh,
		JHandler: a.postRefresh,
		AuthFunc: nil})

	s.AddRoute(userver.Route{
		Name:     "assessment",
		Methods:  []string{"GET"},
		Pattern:  schema.EndpointAssessment, // All visible assessments
		JHandler: a.getAssessments,
		AuthFunc: anyRole})

	s.AddRoute(userver.Route{
		Name:     "assessment",
		Methods:  []string{"GET"},
		Pattern:  schema.EndpointAssessment + "/{id}",
		JHandler: a.getAssessment,
		AuthFunc: anyRole})

	s.AddRoute(userver.Route{
		Name:     "assessment",
		Methods:  []string{"DELETE"},
		Pattern:  schema.EndpointAssessment + "/{id}",
		JHandler: a.deleteAssessment,
		AuthFunc: admins})

	s.AddRoute(userver.Route{
		Name:     "assessmentFiles",
		Methods:  []string{"GET"},
		Pattern:  schema.EndpointAssessment + "/{id}/files",
		JHandler: a.getAssessmentFiles,
		AuthFunc: anyRole})

	s.AddRoute(userver.Route{
		Name:     "user",
		Methods:  []string{"GET"},
		Pattern:  schema.EndpointUser + "/{id}",
		JHandler: a.getUser,
		AuthFunc: admins})

	s.AddRoute(userver.Route{
		Name:     "grant",
		Methods:  []string{"PUT", "POST"}, // Allow either
		Pattern:  schema.EndpointUser + "/{id}/grant/{project}",
		JHandler: a.putGrant,
		AuthFunc: admins})

	s.AddRoute(userver.Route{
		Name:     "grant",
		Methods:  []string{"DELETE"},
		Pattern:  schema.EndpointUser + "/{id}/grant/{project}",
		JHandler: a.deleteGrant,
		AuthFunc: admins})

	s.AddRoute(userver.Route{
		Name:     "report",
		Methods:  []string{"POST"},
		Pattern:  schema.EndpointReport,
		JHandler: a.postReport,
		AuthFunc: admins})

	s.AddRoute(userver.Route{
		Name:     "screen",
		Methods:  []string{"GET"},
		Pattern:  schema.EndpointScreen + "/{id}",
		Handler:  report,
		AuthFunc: anyRole})

	return s, nil
}

// Stop shuts down the HTTP server
func (a *API) Stop() {
	if a.server == nil {
		return
	}
	if err := a.server.Stop(); err != nil {
		a.logger.Errorf(2005, "API stop error: %s", err.Error())
	}
}

// Close closes open files, etc.
func (a *API) Close() {
	a.data.Close()
}

// Tasks runs periodic housekeeping
func (a *API) Tasks() {
	if a.data == nil {
		return
	}
	if n := a.data.PruneStaging(stagingMaxAge); n > 0 {
		a.logger.Infof(2010, "removed %d abandoned import directories", n)
	}
}
