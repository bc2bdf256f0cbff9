/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/neuroinfo/dwiqc/common/schema"
)

type AuthInfo struct {
	Active     bool      `json:"active"`
	HashedPass string    `json:"hashed_pass"`
	Role       int       `json:"role"`
	FailCount  int       `json:"fail_count"`
	LastUpdate time.Time `json:"last_update"`
	LastAuth   time.Time `json:"last_auth"`
	LastFail   time.Time `json:"last_fail"`
}

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrAccountDisabled = errors.New("account disabled")
	ErrInvalidPassword = errors.New("invalid password")
)

// SetAuth creates or replaces an account
func (d *DB) SetAuth(id string, pass string, role int) error {
	if !schema.ValidUsername(id) {
		return fmt.Errorf("invalid user name %q", id)
	}

	hashedPass, err := GenerateHash(pass)
	if err != nil {
		return fmt.Errorf("hash error: %w", err)
	}

	info := AuthInfo{
		Active:     true,
		HashedPass: hashedPass,
		Role:       role,
		LastUpdate: time.Now(),
	}

	if err = d.SetData(BucketAuth, id, info); err != nil {
		return fmt.Errorf("failed to store auth info: %w", err)
	}

	d.logger.Infof(2210, "account %s stored with role %s", id, schema.RoleName(role))
	return nil
}

// GetAuth retrieves authentication information for a given user
func (d *DB) GetAuth(id string) (AuthInfo, error) {
	var result AuthInfo
	err := d.GetData(BucketAuth, validateKey(id), &result)
	if errors.Is(err, schema.ErrNotFound) {
		return result, ErrUserNotFound
	}
	return result, err
}

// CheckAuth verifies a password and returns the account's role. It
// records the last success or counts the failure.
func (d *DB) CheckAuth(id, pass string) (int, error) {
	info, err := d.GetAuth(id)
	if err != nil {
		return schema.RoleNone, err
	}

	if !info.Active {
		return schema.RoleNone, ErrAccountDisabled
	}

	auth, err := VerifyHash(pass, info.HashedPass)
	if err != nil {
		return schema.RoleNone, fmt.Errorf("VerifyHash error: %w", err)
	}

	if auth {
		info.FailCount = 0
		info.LastAuth = time.Now()

		// If the update fails something is wrong, so fail the login
		if err = d.SetData(BucketAuth, validateKey(id), info); err != nil {
			return schema.RoleNone, err
		}
		return info.Role, nil
	}

	info.FailCount++
	info.LastFail = time.Now()
	if err = d.SetData(BucketAuth, validateKey(id), info); err != nil {
		return schema.RoleNone, err
	}
	return schema.RoleNone, ErrInvalidPassword
}

// DeleteAuth removes an account
func (d *DB) DeleteAuth(id string) error {
	return d.DeleteData(BucketAuth, validateKey(id))
}

// UserActive reports whether an account exists and is active
func (d *DB) UserActive(id string) bool {
	info, err := d.GetAuth(id)
	if err != nil {
		return false
	}
	return info.Active
}
