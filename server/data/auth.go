/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package data

import (
	"math/rand"
	"time"

	"github.com/neuroinfo/dwiqc/common/schema"
)

// Auth validates a user id and password and returns the role of the user
func (d *Data) Auth(id string, pass string) (int, error) {
	role, err := d.database.CheckAuth(id, pass)
	if err != nil {
		// Slow down guessing and hide timing differences
		randomDelay()
		return schema.RoleNone, err
	}
	return role, nil
}

// SetAuth sets the password and role of a user
func (d *Data) SetAuth(id string, pass string, role int) error {
	return d.database.SetAuth(id, pass, role)
}

// LoginGetToken authenticates a user and returns access and refresh tokens
func (d *Data) LoginGetToken(user string, pass string) (string, string, error) {
	role, err := d.Auth(user, pass)
	if err != nil {
		return "", "", err
	}

	accessToken, err := d.createToken(tokenRequest{
		subject: user,
		role:    role,
		purpose: schema.TokenPurposeAccess,
	})
	if err != nil {
		return "", "", err
	}

	refreshToken, err := d.createToken(tokenRequest{
		subject: user,
		role:    role,
		purpose: schema.TokenPurposeRefresh,
	})
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// Grant gives a user read access to a project
func (d *Data) Grant(user, project string) error {
	return d.database.Grant(user, project)
}

// Revoke removes a user's access to a project
func (d *Data) Revoke(user, project string) error {
	return d.database.Revoke(user, project)
}

// User returns the public view of an account
func (d *Data) User(id string) (schema.UserMeta, error) {
	info, err := d.database.GetAuth(id)
	if err != nil {
		return schema.UserMeta{}, err
	}

	projects, err := d.database.Projects(id)
	if err != nil {
		return schema.UserMeta{}, err
	}
	return schema.UserMeta{User: id, Role: info.Role, Projects: projects}, nil
}

// randomDelay sleeps between 0 and 1000ms
func randomDelay() {
	time.Sleep(time.Duration(rand.Intn(1000)) * time.Millisecond)
}
