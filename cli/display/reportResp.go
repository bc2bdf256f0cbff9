//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// See LICENSE file for details
//

package display

import (
	"encoding/json"
	"fmt"

	"github.com/neuroinfo/dwiqc/cli/credentials"
	"github.com/neuroinfo/dwiqc/cli/global"
	"github.com/neuroinfo/dwiqc/common/schema"
)

func ReportResp(statusCode int, data []byte, err error) error {

	// Check for errors
	if err != nil {
		return fmt.Errorf("HTTP post failed: %w", err)
	}

	// Print the response code
	fmt.Printf("\nServer response: HTTP %d\n", statusCode)

	// Unmarshal the response body into a APIReportResponse object
	var reportResp schema.APIReportResponse
	err = json.Unmarshal(data, &reportResp)
	if err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	// Check for expired access token
	if reportResp.Status == schema.APIStatusExpired {
		credentials.AccessExpired()
	}

	if reportResp.Status != schema.APIStatusOK {
		global.Pretty(reportResp)
		return nil
	}

	fmt.Println()

	if reportResp.Report.Type == schema.ReportTypeJSON || reportResp.Report.Type == schema.ReportTypeXML {
		fmt.Println(string(reportResp.Report.Data))
		return nil
	}

	// Fallback to string format
	if len(reportResp.Report.Data) > 0 {
		if reportResp.Report.Name != "" {
			fmt.Printf("%s\n", reportResp.Report.Name)
		}

		// Convert to a string and display it
		fmt.Println(string(reportResp.Report.Data))
	}

	return nil
}
