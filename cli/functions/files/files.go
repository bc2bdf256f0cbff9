/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package files

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neuroinfo/dwiqc/cli/communications"
	"github.com/neuroinfo/dwiqc/cli/display"
	"github.com/neuroinfo/dwiqc/cli/functions/assessment"
	"github.com/neuroinfo/dwiqc/cli/login"
	"github.com/neuroinfo/dwiqc/common/schema"
)

func Register() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "files <id>",
		Aliases: []string{"file"},
		Short:   "assessment files",
		Long:    "list the files of an assessment or download one of them",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := communications.New(login.Login())
			display.ErrorWrapper(display.FileMapResp(c.Get(assessment.Endpoint(args[0]) + "/files")))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id> <label> [destination]",
		Short: "download a file",
		Long:  "download the file with the given label, by default into the current directory",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := ""
			if len(args) == 3 {
				dest = args[2]
			}
			return download(args[0], args[1], dest)
		},
	})

	return cmd
}

func download(id, label, dest string) error {
	c := communications.New(login.Login())

	code, data, err := c.Get(assessment.Endpoint(id) + "/files")
	if err != nil {
		return err
	}

	var resp schema.APIFileMapResponse
	if err = json.Unmarshal(data, &resp); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if code != http.StatusOK {
		return fmt.Errorf("listing files failed with HTTP status %d: %s", code, resp.Details)
	}

	uri, ok := resp.Data[label]
	if !ok {
		return fmt.Errorf("assessment %s has no file labelled %s", id, label)
	}

	code, data, err = c.Get(uri)
	if err != nil {
		return err
	}
	if code != http.StatusOK {
		return fmt.Errorf("download failed with HTTP status %d", code)
	}

	name, err := localName(uri)
	if err != nil {
		return err
	}
	if dest == "" {
		dest = name
	} else if info, err := os.Stat(dest); err == nil && info.IsDir() {
		dest = filepath.Join(dest, name)
	}

	if err = os.WriteFile(dest, data, 0644); err != nil {
		return err
	}
	fmt.Printf("Saved %s (%d bytes)\n", dest, len(data))
	return nil
}

// localName returns the unescaped last segment of a download address
func localName(uri string) (string, error) {
	name, err := url.PathUnescape(path.Base(uri))
	if err != nil {
		return "", fmt.Errorf("invalid file address %s: %w", uri, err)
	}
	if name == "." || name == ".." || name == "/" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid file name in %s", uri)
	}
	return name, nil
}
