/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package screens

import (
	"github.com/neuroinfo/dwiqc/common/schema"
)

// DwiqcScreen shows a DWIQC assessment with download links for its files
type DwiqcScreen struct{}

// Name is the screen name the XSI type neuroinfo:dwiqc resolves to
func (DwiqcScreen) Name() string {
	return "XDATScreen_report_neuroinfo_dwiqc"
}

// Template names the embedded page template
func (DwiqcScreen) Template() string {
	return "report_neuroinfo_dwiqc.html"
}

// FinalProcessing publishes the assessment as "om" and its label to URI
// map as "fileMap". Errors are returned to the caller unlogged.
func (DwiqcScreen) FinalProcessing(data *RunData, ctx *Context) error {
	om, err := schema.NewDwiqc(data.Item)
	if err != nil {
		return err
	}
	ctx.Put("om", om)

	fileMap, err := FileMap(om.OutFile)
	if err != nil {
		return err
	}
	ctx.Put("fileMap", fileMap)
	return nil
}

// FileMap maps label to URI for every direct file resource. Catalogs
// count as direct resources. Series and DICOM references are skipped.
// When labels collide the later resource wins. A nil list is an error.
func FileMap(resources []schema.AbstractResource) (map[string]string, error) {
	if resources == nil {
		return nil, schema.ErrNoResourceList
	}

	m := make(map[string]string, len(resources))
	for _, r := range resources {
		switch r.Kind {
		case schema.KindResource, schema.KindResourceCatalog:
			m[r.Label] = r.URI
		}
	}
	return m, nil
}
