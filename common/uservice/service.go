//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

// Package uservice runs a long-lived process: a background function,
// periodic tasks, and an orderly stop on SIGINT or SIGTERM.
package uservice

import (
	"os"
	"time"

	"github.com/neuroinfo/dwiqc/common/interfaces"
)

type Service struct {
	logger         interfaces.Logger
	ServiceName    string
	ServiceVersion string
	ServiceBuild   int
	TaskTicker     time.Duration // seconds
	BackgroundFunc func(interfaces.Logger)
	TasksFunc      func(interfaces.Logger)
	StopFunc       func(interfaces.Logger)
	SEid           uint32
	signals        chan os.Signal
}

// New returns a default Service
func New(options ...func(*Service) error) (*Service, error) {
	s := &Service{
		ServiceName:    "dwiqc",
		ServiceVersion: "unknown",
		TaskTicker:     60,
		signals:        make(chan os.Signal, 1),
	}

	for _, op := range options {
		if err := op(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Stop asks a running service to stop as if it had received SIGTERM
func (s *Service) Stop() {
	select {
	case s.signals <- os.Interrupt:
	default:
	}
}

func WithServiceName(name string) func(*Service) error {
	return func(s *Service) error {
		s.ServiceName = name
		return nil
	}
}

func WithServiceVersion(version string) func(*Service) error {
	return func(s *Service) error {
		s.ServiceVersion = version
		return nil
	}
}

func WithServiceBuild(build int) func(*Service) error {
	return func(s *Service) error {
		s.ServiceBuild = build
		return nil
	}
}

func WithLogger(logger interfaces.Logger) func(*Service) error {
	return func(s *Service) error {
		s.logger = logger
		return nil
	}
}

func WithTaskTicker(ticker time.Duration) func(*Service) error {
	return func(s *Service) error {
		s.TaskTicker = ticker
		return nil
	}
}

func WithBackgroundFunc(f func(interfaces.Logger)) func(*Service) error {
	return func(s *Service) error {
		s.BackgroundFunc = f
		return nil
	}
}

func WithTasksFunc(f func(interfaces.Logger)) func(*Service) error {
	return func(s *Service) error {
		s.TasksFunc = f
		return nil
	}
}

func WithStopFunc(f func(interfaces.Logger)) func(*Service) error {
	return func(s *Service) error {
		s.StopFunc = f
		return nil
	}
}

func WithSEid(seid uint32) func(*Service) error {
	return func(s *Service) error {
		s.SEid = seid
		return nil
	}
}
