/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package credentials manages the access and refresh tokens. The refresh
// token is persisted per server so that later invocations skip the login.
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	accessToken  string
	refreshToken string
)

type tokenFile struct {
	Server       string `json:"server"`
	RefreshToken string `json:"refresh_token"`
}

func SetAccessToken(token string) {
	accessToken = token
}

func SetRefreshToken(token string) {
	refreshToken = token
}

func GetAccessToken() string {
	return accessToken
}

func GetRefreshToken() string {
	return refreshToken
}

func AccessExpired() {
	accessToken = ""
}

func RefreshExpired() {
	refreshToken = ""
}

// Load reads a refresh token saved for server. A missing file, or one
// saved for a different server, leaves the current token unchanged.
func Load(path, server string) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	var f tokenFile
	if err = json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("token file %s: %w", path, err)
	}

	if f.Server == server && f.RefreshToken != "" {
		refreshToken = f.RefreshToken
	}
	return nil
}

// Save writes the refresh token for server, readable by the owner only.
// With no refresh token the file is removed.
func Save(path, server string) error {
	if refreshToken == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}

	b, err := json.Marshal(tokenFile{Server: server, RefreshToken: refreshToken})
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0600)
}
