/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package uservice

import (
	"errors"
	"os/signal"
	"syscall"
	"time"
)

// Start runs the service until a stop signal arrives. It blocks.
func (s *Service) Start() error {
	if s.logger == nil {
		return errors.New("refusing to start service with nil logger")
	}
	if s.TaskTicker <= 0 {
		return errors.New("task ticker must be positive")
	}

	signal.Notify(s.signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(s.signals)

	s.logger.Infof(s.SEid+1, "%s %s (build %d) service started", s.ServiceName, s.ServiceVersion, s.ServiceBuild)
	s.logger.Debugf(s.SEid+1, "Debug logging enabled")

	if s.BackgroundFunc != nil {
		go s.BackgroundFunc(s.logger)
	}

	ticker := time.NewTicker(s.TaskTicker * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if s.TasksFunc != nil {
				s.TasksFunc(s.logger)
			}
		case <-s.signals:
			s.logger.Infof(s.SEid+2, "%s %s (build %d) service stopping", s.ServiceName, s.ServiceVersion, s.ServiceBuild)
			if s.StopFunc != nil {
				s.StopFunc(s.logger)
			}
			s.logger.Infof(s.SEid+3, "%s %s (build %d) service stopped", s.ServiceName, s.ServiceVersion, s.ServiceBuild)
			return nil
		}
	}
}
