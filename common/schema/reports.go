/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

import (
	"errors"
	"fmt"
	"slices"
)

const (
	ReportTypeString = "string"
	ReportTypeJSON   = "json"
	ReportTypeXML    = "xml"
)

// Report names
const (
	ReportAssessments = "assessments"
	ReportMetrics     = "metrics"
)

type Report struct {
	Type string `json:"type"`
	Name string `json:"name"`
	Data []byte `json:"data"`
}

func NewReport() Report {
	return Report{}
}

// ReportDef describes the parameters a named report accepts
type ReportDef struct {
	Name         string
	RequiredArgs []string
	OptionalArgs []string
}

var reportDefs = map[string]ReportDef{
	ReportAssessments: {
		Name:         ReportAssessments,
		OptionalArgs: []string{"project", "format"},
	},
	ReportMetrics: {
		Name:         ReportMetrics,
		RequiredArgs: []string{"id"},
		OptionalArgs: []string{"format"},
	},
}

// ReportNames returns the known report names in sorted order
func ReportNames() []string {
	names := make([]string, 0, len(reportDefs))
	for n := range reportDefs {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// ValidateReport checks a report name and its parameters against the report definition
func ValidateReport(name string, parameters map[string]string) error {
	def, ok := reportDefs[name]
	if !ok {
		return errors.New("invalid report")
	}

	for _, arg := range def.RequiredArgs {
		if _, ok := parameters[arg]; !ok {
			return errors.New("missing required argument: " + arg)
		}
	}

	for param := range parameters {
		if !slices.Contains(def.RequiredArgs, param) && !slices.Contains(def.OptionalArgs, param) {
			return fmt.Errorf("invalid argument: %s", param)
		}
	}
	return nil
}
