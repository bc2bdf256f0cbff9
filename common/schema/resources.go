/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

// Kind identifies the variant of an AbstractResource
type Kind string

const (
	// KindResource is a single file with a label and URI
	KindResource Kind = "resource"

	// KindResourceCatalog is a catalog file. It is a specialisation of
	// KindResource and also carries a label and URI.
	KindResourceCatalog Kind = "resourceCatalog"

	// KindResourceSeries is a set of files described by path and pattern
	KindResourceSeries Kind = "resourceSeries"

	// KindDicomSeries references DICOM instances by UID only
	KindDicomSeries Kind = "dicomSeries"
)

// AbstractResource is a reference to a file or set of files attached to an
// assessment. Which fields are meaningful depends on Kind.
type AbstractResource struct {
	Kind      Kind     `json:"kind"`
	Label     string   `json:"label"`
	URI       string   `json:"uri,omitempty"`
	Format    string   `json:"format,omitempty"`
	Content   string   `json:"content,omitempty"`
	Checksum  string   `json:"checksum,omitempty"`
	Size      int64    `json:"size,omitempty"`
	FileCount int      `json:"file_count,omitempty"`
	Path      string   `json:"path,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
	UIDs      []string `json:"uids,omitempty"`
}
