/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

import (
	"encoding/json"
	"fmt"
)

// Dwiqc is a diffusion weighted imaging quality control assessment
type Dwiqc struct {
	ID             string             `json:"id"`
	Project        string             `json:"project"`
	Label          string             `json:"label"`
	Date           string             `json:"date,omitempty"`
	Time           string             `json:"time,omitempty"`
	ImageSessionID string             `json:"image_session_id,omitempty"`
	SessionLabel   string             `json:"session_label,omitempty"`
	DWIScanID      string             `json:"dwi_scan_id,omitempty"`
	PAFmapScanID   string             `json:"pa_fmap_scan_id,omitempty"`
	APFmapScanID   string             `json:"ap_fmap_scan_id,omitempty"`
	EddyQuad       EddyQuad           `json:"eddy_quad"`
	OutFile        []AbstractResource `json:"out_file"`
}

// EddyQuad holds the FSL eddy_quad summary metrics
type EddyQuad struct {
	AverageSNRb0        float64    `json:"average_snr_b0"`
	AverageAbsMotion    float64    `json:"average_abs_motion_mm"`
	AverageRelMotion    float64    `json:"average_rel_motion_mm"`
	AverageXTranslation float64    `json:"average_x_translation_mm"`
	AverageYTranslation float64    `json:"average_y_translation_mm"`
	AverageZTranslation float64    `json:"average_z_translation_mm"`
	ShellCNR            []ShellCNR `json:"shell_cnr"`
}

// ShellCNR is the average contrast to noise ratio of one b-value shell
type ShellCNR struct {
	Shell int     `json:"shell"`
	CNR   float64 `json:"cnr"`
}

// NewDwiqc builds an assessment from a stored item. The item's
// identity fields take precedence over those in the encoded data.
func NewDwiqc(item Item) (*Dwiqc, error) {
	if item.XSIType != XSITypeDwiqc {
		return nil, fmt.Errorf("%w: %s has type %q", ErrNotDwiqc, item.ID, item.XSIType)
	}

	d := &Dwiqc{}
	if err := json.Unmarshal(item.Data, d); err != nil {
		return nil, fmt.Errorf("decoding assessment %s: %w", item.ID, err)
	}

	d.ID = item.ID
	d.Project = item.Project
	d.Label = item.Label
	return d, nil
}

// Item encodes the assessment for storage
func (d *Dwiqc) Item() (Item, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return Item{}, fmt.Errorf("encoding assessment %s: %w", d.ID, err)
	}

	return Item{
		XSIType: XSITypeDwiqc,
		ID:      d.ID,
		Project: d.Project,
		Label:   d.Label,
		Data:    data,
	}, nil
}
