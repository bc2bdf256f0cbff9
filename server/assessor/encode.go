/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package assessor

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/neuroinfo/dwiqc/common/schema"
)

// outDocument is the namespaced form written by Encode. encoding/xml
// cannot emit prefixed names from a namespace tag, so prefixes are
// spelled out in the element names.
type outDocument struct {
	XMLName        xml.Name `xml:"DWIQC"`
	Xmlns          string   `xml:"xmlns,attr"`
	XmlnsXNAT      string   `xml:"xmlns:xnat,attr"`
	XmlnsXSI       string   `xml:"xmlns:xsi,attr"`
	XmlnsNeuroinfo string   `xml:"xmlns:neuroinfo,attr"`
	Project        string   `xml:"project,attr"`
	ID             string   `xml:"ID,attr"`
	Label          string   `xml:"label,attr"`
	Date           string   `xml:"xnat:date,omitempty"`
	Time           string   `xml:"xnat:time,omitempty"`
	ImageSessionID string   `xml:"xnat:imageSession_ID,omitempty"`
	PAFmapScanID   string   `xml:"PA_fmap_scan_id,omitempty"`
	APFmapScanID   string   `xml:"AP_fmap_scan_id,omitempty"`
	DWIScanID      string   `xml:"dwi_scan_id,omitempty"`
	SessionLabel   string   `xml:"session_label,omitempty"`
	EddyQuad       eddyQuad `xml:"eddy_quad"`
}

// Encode writes an assessment as assessment.xml with metrics in five
// decimal form
func Encode(w io.Writer, d *schema.Dwiqc) error {
	doc := outDocument{
		Xmlns:          NamespaceNeuroinfo,
		XmlnsXNAT:      NamespaceXNAT,
		XmlnsXSI:       NamespaceXSI,
		XmlnsNeuroinfo: NamespaceNeuroinfo,
		Project:        d.Project,
		ID:             d.ID,
		Label:          d.Label,
		Date:           d.Date,
		Time:           d.Time,
		ImageSessionID: d.ImageSessionID,
		PAFmapScanID:   d.PAFmapScanID,
		APFmapScanID:   d.APFmapScanID,
		DWIScanID:      d.DWIScanID,
		SessionLabel:   d.SessionLabel,
		EddyQuad: eddyQuad{
			AverageSNRb0:        FormatMetric(d.EddyQuad.AverageSNRb0),
			AverageAbsMotion:    FormatMetric(d.EddyQuad.AverageAbsMotion),
			AverageRelMotion:    FormatMetric(d.EddyQuad.AverageRelMotion),
			AverageXTranslation: FormatMetric(d.EddyQuad.AverageXTranslation),
			AverageYTranslation: FormatMetric(d.EddyQuad.AverageYTranslation),
			AverageZTranslation: FormatMetric(d.EddyQuad.AverageZTranslation),
		},
	}

	for _, s := range d.EddyQuad.ShellCNR {
		doc.EddyQuad.CNR = append(doc.EddyQuad.CNR, cnr{Shell: s.Shell, Value: FormatMetric(s.CNR)})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding assessment %s: %w", d.ID, err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// ShellLabel names a shell for display, e.g. "b1000"
func ShellLabel(shell int) string {
	return "b" + strconv.Itoa(shell)
}
