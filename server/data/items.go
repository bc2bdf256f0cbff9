/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package data

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/neuroinfo/dwiqc/common/fields"
	"github.com/neuroinfo/dwiqc/common/schema"
	"github.com/neuroinfo/dwiqc/server/db"
	"github.com/neuroinfo/dwiqc/server/global"
)

// CanRead reports whether the caller may read items of a project.
// Auditors and administrators read every project. Users need a grant.
func (d *Data) CanRead(who schema.AuthInfo, project string) bool {
	if !who.IsAuthenticated() {
		return false
	}
	if schema.ReadsAllProjects(who.Role) {
		return true
	}
	return d.database.HasGrant(who.ID, project)
}

// GetItem returns a stored item without an access check
func (d *Data) GetItem(id string) (schema.Item, error) {
	return d.database.GetItem(id)
}

// ReadItem returns an item the caller may read
func (d *Data) ReadItem(who schema.AuthInfo, id string) (schema.Item, error) {
	item, err := d.database.GetItem(id)
	if err != nil {
		return schema.Item{}, err
	}
	if !d.CanRead(who, item.Project) {
		return schema.Item{}, schema.ErrAccessDenied
	}
	return item, nil
}

// Assessment returns a DWIQC assessment the caller may read
func (d *Data) Assessment(who schema.AuthInfo, id string) (*schema.Dwiqc, error) {
	item, err := d.ReadItem(who, id)
	if err != nil {
		return nil, err
	}
	return schema.NewDwiqc(item)
}

// ListAssessments returns the items visible to the caller, optionally
// limited to one project
func (d *Data) ListAssessments(who schema.AuthInfo, project string) ([]schema.AssessmentRef, error) {
	items, err := d.database.ListItems()
	if err != nil {
		return nil, err
	}

	refs := []schema.AssessmentRef{}
	for _, item := range items {
		if project != "" && item.Project != project {
			continue
		}
		if d.CanRead(who, item.Project) {
			refs = append(refs, item.Ref())
		}
	}
	return refs, nil
}

// DeleteAssessment removes an item and its files
func (d *Data) DeleteAssessment(id string) error {
	if !db.ValidKey(id) {
		return schema.ErrNotFound
	}
	if err := d.database.DeleteItem(id); err != nil {
		return err
	}

	if err := os.RemoveAll(filepath.Join(d.filesPath, id)); err != nil {
		return fmt.Errorf("item %s deleted but files remain: %w", id, err)
	}

	d.logger.Info(3010, "assessment deleted", fields.NewFields(fields.NewField("id", id)))
	return nil
}

// FileAccess decides whether the caller may download a file. Files are
// stored below a directory named after their item.
func (d *Data) FileAccess(who schema.AuthInfo, name string) bool {
	id, _, _ := strings.Cut(strings.TrimPrefix(name, "/"), "/")
	if id == "" {
		return false
	}

	_, err := d.ReadItem(who, id)
	if err != nil && !errors.Is(err, schema.ErrNotFound) && !errors.Is(err, schema.ErrAccessDenied) {
		d.logger.Warning(3011, "file access check failed",
			fields.NewFields(fields.NewField("file", name), fields.NewField("error", err.Error())))
	}
	return err == nil
}

// ReportURL returns the external address of an item's report screen
func (d *Data) ReportURL(id string) string {
	base := strings.TrimSuffix(d.conf.SC.Get(global.ConfigExternalURL).String(), "/")
	return base + schema.EndpointScreen + "/" + url.PathEscape(id)
}
