/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package display

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/neuroinfo/dwiqc/cli/credentials"
	"github.com/neuroinfo/dwiqc/cli/global"
	"github.com/neuroinfo/dwiqc/common/schema"
)

// AssessmentList prints the assessments returned by the server as a table
func AssessmentList(statusCode int, data []byte, err error) error {
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}

	fmt.Printf("\nServer response: HTTP %d\n\n", statusCode)

	var resp schema.APIAssessmentListResponse
	if err = json.Unmarshal(data, &resp); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if resp.Status == schema.APIStatusExpired {
		credentials.AccessExpired()
	}

	if resp.Status != schema.APIStatusOK {
		global.Pretty(resp)
		return nil
	}

	WriteAssessments(os.Stdout, resp.Data)
	return nil
}

// WriteAssessments writes one row per assessment
func WriteAssessments(w io.Writer, refs []schema.AssessmentRef) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tPROJECT\tLABEL\tMODIFIED")
	for _, r := range refs {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, r.Project, r.Label, r.Modified.Format(time.RFC3339))
	}
	_ = tw.Flush()
}

// FileMapResp prints an assessment's files sorted by label
func FileMapResp(statusCode int, data []byte, err error) error {
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}

	fmt.Printf("\nServer response: HTTP %d\n\n", statusCode)

	var resp schema.APIFileMapResponse
	if err = json.Unmarshal(data, &resp); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if resp.Status == schema.APIStatusExpired {
		credentials.AccessExpired()
	}

	if resp.Status != schema.APIStatusOK {
		global.Pretty(resp)
		return nil
	}

	WriteFileMap(os.Stdout, global.ServerURL, resp.Data)
	return nil
}

// WriteFileMap writes label and absolute URL pairs in collated label order
func WriteFileMap(w io.Writer, server string, fileMap map[string]string) {
	labels := make([]string, 0, len(fileMap))
	for label := range fileMap {
		labels = append(labels, label)
	}
	collate.New(language.English, collate.IgnoreCase).SortStrings(labels)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, label := range labels {
		_, _ = fmt.Fprintf(tw, "%s\t%s%s\n", label, server, fileMap[label])
	}
	_ = tw.Flush()
}
