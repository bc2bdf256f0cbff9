/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package assessor reads and writes the assessment.xml document produced
// by the dwiqc pipeline.
package assessor

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/neuroinfo/dwiqc/common/schema"
)

const (
	NamespaceNeuroinfo = "http://www.neuroinfo.org/neuroinfo"
	NamespaceXNAT      = "http://nrg.wustl.edu/xnat"
	NamespaceXSI       = "http://www.w3.org/2001/XMLSchema-instance"
)

// Assessment mirrors the DWIQC element. Metric values are kept as text
// and converted by Dwiqc.
type Assessment struct {
	XMLName        xml.Name `xml:"DWIQC"`
	Project        string   `xml:"project,attr"`
	ID             string   `xml:"ID,attr"`
	Label          string   `xml:"label,attr"`
	Date           string   `xml:"http://nrg.wustl.edu/xnat date"`
	Time           string   `xml:"http://nrg.wustl.edu/xnat time"`
	ImageSessionID string   `xml:"http://nrg.wustl.edu/xnat imageSession_ID"`
	PAFmapScanID   string   `xml:"PA_fmap_scan_id"`
	APFmapScanID   string   `xml:"AP_fmap_scan_id"`
	DWIScanID      string   `xml:"dwi_scan_id"`
	SessionLabel   string   `xml:"session_label"`
	EddyQuad       eddyQuad `xml:"eddy_quad"`
}

type eddyQuad struct {
	AverageSNRb0        string `xml:"Average_SNR_b0"`
	AverageAbsMotion    string `xml:"Average_abs_motion_mm"`
	AverageRelMotion    string `xml:"Average_rel_motion_mm"`
	AverageXTranslation string `xml:"Average_x_translation_mm"`
	AverageYTranslation string `xml:"Average_y_translation_mm"`
	AverageZTranslation string `xml:"Average_z_translation_mm"`
	CNR                 []cnr  `xml:"shell_cnr>cnr"`
}

type cnr struct {
	Shell int    `xml:"shell,attr"`
	Value string `xml:",chardata"`
}

// AssessmentID returns the identifier the pipeline assigns to the
// assessment of a DWI scan
func AssessmentID(session, scan string) string {
	return fmt.Sprintf("%s_DWI_%s_DWIQC", session, scan)
}

// ParseAssessment decodes assessment.xml
func ParseAssessment(r io.Reader) (*Assessment, error) {
	a := &Assessment{}
	if err := xml.NewDecoder(r).Decode(a); err != nil {
		return nil, fmt.Errorf("decoding assessment: %w", err)
	}

	a.ID = strings.TrimSpace(a.ID)
	if a.ID == "" {
		return nil, errors.New("assessment has no ID")
	}
	if a.Label == "" {
		a.Label = a.ID
	}
	return a, nil
}

// Dwiqc converts the document to an assessment with an empty resource list
func (a *Assessment) Dwiqc() (*schema.Dwiqc, error) {
	d := &schema.Dwiqc{
		ID:             a.ID,
		Project:        a.Project,
		Label:          a.Label,
		Date:           strings.TrimSpace(a.Date),
		Time:           strings.TrimSpace(a.Time),
		ImageSessionID: strings.TrimSpace(a.ImageSessionID),
		SessionLabel:   strings.TrimSpace(a.SessionLabel),
		DWIScanID:      strings.TrimSpace(a.DWIScanID),
		PAFmapScanID:   strings.TrimSpace(a.PAFmapScanID),
		APFmapScanID:   strings.TrimSpace(a.APFmapScanID),
		OutFile:        []schema.AbstractResource{},
	}

	metrics := []struct {
		name string
		text string
		dest *float64
	}{
		{"Average_SNR_b0", a.EddyQuad.AverageSNRb0, &d.EddyQuad.AverageSNRb0},
		{"Average_abs_motion_mm", a.EddyQuad.AverageAbsMotion, &d.EddyQuad.AverageAbsMotion},
		{"Average_rel_motion_mm", a.EddyQuad.AverageRelMotion, &d.EddyQuad.AverageRelMotion},
		{"Average_x_translation_mm", a.EddyQuad.AverageXTranslation, &d.EddyQuad.AverageXTranslation},
		{"Average_y_translation_mm", a.EddyQuad.AverageYTranslation, &d.EddyQuad.AverageYTranslation},
		{"Average_z_translation_mm", a.EddyQuad.AverageZTranslation, &d.EddyQuad.AverageZTranslation},
	}

	var err error
	for _, m := range metrics {
		if *m.dest, err = parseMetric(m.text); err != nil {
			return nil, fmt.Errorf("%s: %w", m.name, err)
		}
	}

	for _, c := range a.EddyQuad.CNR {
		v, err := parseMetric(c.Value)
		if err != nil {
			return nil, fmt.Errorf("cnr shell %d: %w", c.Shell, err)
		}
		d.EddyQuad.ShellCNR = append(d.EddyQuad.ShellCNR, schema.ShellCNR{Shell: c.Shell, CNR: v})
	}
	return d, nil
}

// parseMetric treats a missing value as zero
func parseMetric(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// FormatMetric renders a metric with five decimals
func FormatMetric(v float64) string {
	return strconv.FormatFloat(v, 'f', 5, 64)
}
