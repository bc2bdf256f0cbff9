/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package db

import (
	"errors"
	"fmt"
	"slices"

	"github.com/neuroinfo/dwiqc/common/schema"
)

// Grants maps an account to the projects it may read. Roles that read
// every project do not need grants.

// Grant gives a user read access to a project
func (d *DB) Grant(user, project string) error {
	if project == "" {
		return errors.New("project is required")
	}
	if !d.UserActive(user) {
		return ErrUserNotFound
	}

	projects, err := d.Projects(user)
	if err != nil {
		return err
	}
	if slices.Contains(projects, project) {
		return nil
	}

	projects = append(projects, project)
	slices.Sort(projects)
	if err = d.SetData(BucketGrants, validateKey(user), projects); err != nil {
		return fmt.Errorf("failed to store grants: %w", err)
	}

	d.logger.Infof(2220, "granted %s access to project %s", user, project)
	return nil
}

// Revoke removes a user's access to a project
func (d *DB) Revoke(user, project string) error {
	projects, err := d.Projects(user)
	if err != nil {
		return err
	}

	i := slices.Index(projects, project)
	if i < 0 {
		return schema.ErrNotFound
	}

	projects = slices.Delete(projects, i, i+1)
	if err = d.SetData(BucketGrants, validateKey(user), projects); err != nil {
		return fmt.Errorf("failed to store grants: %w", err)
	}

	d.logger.Infof(2221, "revoked %s access to project %s", user, project)
	return nil
}

// Projects returns the projects granted to a user in sorted order
func (d *DB) Projects(user string) ([]string, error) {
	var projects []string
	err := d.GetData(BucketGrants, validateKey(user), &projects)
	if errors.Is(err, schema.ErrNotFound) {
		return []string{}, nil
	}
	return projects, err
}

// HasGrant reports whether a user may read a project
func (d *DB) HasGrant(user, project string) bool {
	projects, err := d.Projects(user)
	if err != nil {
		return false
	}
	return slices.Contains(projects, project)
}
