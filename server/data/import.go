/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package data

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/neuroinfo/dwiqc/common/fields"
	"github.com/neuroinfo/dwiqc/common/schema"
	"github.com/neuroinfo/dwiqc/server/assessor"
	"github.com/neuroinfo/dwiqc/server/db"
	"github.com/neuroinfo/dwiqc/server/global"
)

const (
	resourceContent = "DWIQC"
	stagingPrefix   = ".import-"
)

// ImportArtifacts loads a pipeline artifacts directory:
//
//	<dir>/assessor/assessment.xml
//	<dir>/resources/<label>/<file>
//
// Resource files are copied below the files path and described in the
// assessment's out_file list. An existing assessment with the same ID is
// replaced together with its files.
func (d *Data) ImportArtifacts(dir string) (*schema.Dwiqc, error) {
	f, err := os.Open(filepath.Join(dir, "assessor", "assessment.xml"))
	if err != nil {
		return nil, fmt.Errorf("opening assessment: %w", err)
	}
	a, err := assessor.ParseAssessment(f)
	_ = f.Close()
	if err != nil {
		return nil, err
	}

	dwiqc, err := a.Dwiqc()
	if err != nil {
		return nil, err
	}

	// The ID names a directory below the files path
	if !db.ValidKey(dwiqc.ID) {
		return nil, fmt.Errorf("%w %q", schema.ErrInvalidID, dwiqc.ID)
	}

	// Copy into a staging directory so a failed import leaves the
	// previous files in place
	stage := filepath.Join(d.filesPath, stagingPrefix+uuid.New().String())
	if err = os.MkdirAll(stage, 0700); err != nil {
		return nil, fmt.Errorf("creating staging directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(stage) }()

	dwiqc.OutFile, err = d.copyResources(filepath.Join(dir, "resources"), stage, dwiqc.ID)
	if err != nil {
		return nil, err
	}

	item, err := dwiqc.Item()
	if err != nil {
		return nil, err
	}

	dest := filepath.Join(d.filesPath, dwiqc.ID)
	if err = os.RemoveAll(dest); err != nil {
		return nil, fmt.Errorf("removing previous files: %w", err)
	}
	if err = os.Rename(stage, dest); err != nil {
		return nil, fmt.Errorf("publishing files: %w", err)
	}

	if err = d.database.PutItem(item); err != nil {
		return nil, err
	}

	d.logger.Info(3001, "assessment imported",
		fields.NewFields(
			fields.NewField("id", dwiqc.ID),
			fields.NewField("project", dwiqc.Project),
			fields.NewField("resources", len(dwiqc.OutFile))))
	return dwiqc, nil
}

// PruneStaging removes staging directories left behind by imports that
// were interrupted, if they are older than maxAge. It returns the number
// removed.
func (d *Data) PruneStaging(maxAge time.Duration) int {
	entries, err := os.ReadDir(d.filesPath)
	if err != nil {
		d.logger.Warning(3003, "unable to read files path",
			fields.NewFields(fields.NewField("error", err.Error())))
		return 0
	}

	removed := 0
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), stagingPrefix) {
			continue
		}
		info, err := e.Info()
		if err != nil || time.Since(info.ModTime()) < maxAge {
			continue
		}
		if err = os.RemoveAll(filepath.Join(d.filesPath, e.Name())); err != nil {
			d.logger.Warning(3004, "unable to remove staging directory",
				fields.NewFields(fields.NewField("dir", e.Name()), fields.NewField("error", err.Error())))
			continue
		}
		removed++
	}
	return removed
}

// copyResources copies each resources/<label> directory into stage and
// returns the resource list. A label holding a single file becomes a
// direct resource. A label holding several files becomes a series plus
// one direct resource per file labelled <label>/<file>.
func (d *Data) copyResources(src, stage, id string) ([]schema.AbstractResource, error) {
	out := []schema.AbstractResource{}

	labels, err := os.ReadDir(src)
	if os.IsNotExist(err) {
		return out, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading resources: %w", err)
	}

	for _, label := range labels {
		if !label.IsDir() {
			d.logger.Debugf(3002, "skipping %s: not a resource directory", label.Name())
			continue
		}

		files, err := os.ReadDir(filepath.Join(src, label.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading resource %s: %w", label.Name(), err)
		}

		var entries []schema.AbstractResource
		var names []string
		var total int64
		for _, file := range files {
			if !file.Type().IsRegular() {
				continue
			}

			target := filepath.Join(stage, label.Name(), file.Name())
			size, err := copyFile(filepath.Join(src, label.Name(), file.Name()), target)
			if err != nil {
				return nil, err
			}
			total += size

			entries = append(entries, schema.AbstractResource{
				Kind:      schema.KindResource,
				Label:     label.Name(),
				URI:       fileURI(id, label.Name(), file.Name()),
				Format:    resourceFormat(file.Name()),
				Content:   resourceContent,
				Checksum:  d.hasher.SHA256File(target).Hex(),
				Size:      size,
				FileCount: 1,
			})
			names = append(names, file.Name())
		}

		switch len(entries) {
		case 0:
			continue
		case 1:
			out = append(out, entries[0])
		default:
			out = append(out, schema.AbstractResource{
				Kind:      schema.KindResourceSeries,
				Label:     label.Name(),
				Content:   resourceContent,
				Path:      path.Join(id, label.Name()),
				Pattern:   "*",
				Size:      total,
				FileCount: len(entries),
			})
			for i, e := range entries {
				e.Label = label.Name() + "/" + names[i]
				out = append(out, e)
			}
		}
	}
	return out, nil
}

// fileURI returns the download address of a stored file with each path
// segment escaped, so names holding '#', '?' or '%' stay in the path
func fileURI(id, label, name string) string {
	u := url.URL{Path: global.FileDirPattern + path.Join(id, label, name)}
	return u.EscapedPath()
}

// copyFile copies src to dst, creating parent directories, and returns the size
func copyFile(src, dst string) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(dst), 0700); err != nil {
		return 0, err
	}

	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if cErr := out.Close(); err == nil {
		err = cErr
	}
	if err != nil {
		return 0, fmt.Errorf("copying %s: %w", src, err)
	}
	return n, nil
}

// resourceFormat names the format of a file from its extension
func resourceFormat(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".nii.gz"), strings.HasSuffix(lower, ".nii"):
		return "NIFTI"
	case strings.HasSuffix(lower, ".html"), strings.HasSuffix(lower, ".htm"):
		return "HTML"
	}

	ext := strings.TrimPrefix(filepath.Ext(lower), ".")
	return strings.ToUpper(ext)
}
