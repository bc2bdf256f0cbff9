/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package login

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/neuroinfo/dwiqc/cli/communications"
	"github.com/neuroinfo/dwiqc/cli/credentials"
	"github.com/neuroinfo/dwiqc/cli/global"
	"github.com/neuroinfo/dwiqc/common/schema"
)

// Login does its own error handling to avoid a lot of duplication
func Login() string {

	// If we already have an access token, return it
	accessToken := credentials.GetAccessToken()
	if accessToken != "" {
		return accessToken
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fatal(err)
	}

	// Values already in the environment take precedence
	_ = godotenv.Load(filepath.Join(homeDir, global.EnvFile))

	global.ServerURL = strings.TrimSuffix(os.Getenv(global.EnvServer), "/")
	if global.ServerURL == "" {
		fatal(fmt.Errorf("%s is not set", global.EnvServer))
	}

	tokenPath := filepath.Join(homeDir, global.TokenFile)
	if err = credentials.Load(tokenPath, global.ServerURL); err != nil {
		fmt.Printf("Warning: %s\n", err.Error())
	}

	// If we have a refresh token, try to refresh the access token
	refreshToken := credentials.GetRefreshToken()
	if refreshToken != "" {
		token := RefreshToken(refreshToken)
		if token != "" {
			credentials.SetAccessToken(token)
			return token
		}
		// Refresh failed, so we need to log in again
		credentials.RefreshExpired()
	}

	user, pass, err := loadCredentials()
	if err != nil {
		fatal(err)
	}

	// Post the login request to the server
	c := communications.New()
	code, data, err := c.Post(schema.EndpointLogin, schema.LoginRequest{Username: user, Password: pass})
	if err != nil {
		fatal(err)
	}

	if code != 200 {
		fatal(fmt.Errorf("login failed with HTTP status %d", code))
	}

	// Unmarshal the response body into a LoginResponse object
	var loginResp schema.APILoginResponse
	err = json.Unmarshal(data, &loginResp)
	if err != nil {
		fatal(fmt.Errorf("failed to unmarshal response: %w", err))
	}

	if loginResp.AccessToken == "" || loginResp.RefreshToken == "" {
		fatal(errors.New("server returned an empty token"))
	}

	// Save the tokens
	credentials.SetAccessToken(loginResp.AccessToken)
	credentials.SetRefreshToken(loginResp.RefreshToken)
	if err = credentials.Save(tokenPath, global.ServerURL); err != nil {
		fmt.Printf("Warning: unable to save refresh token: %s\n", err.Error())
	}
	return loginResp.AccessToken
}

// loadCredentials reads the user from the environment and prompts for
// the password if it is not set
func loadCredentials() (string, string, error) {
	var err error
	user := os.Getenv(global.EnvUser)
	pass := os.Getenv(global.EnvPass)

	if user == "" {
		return "", "", fmt.Errorf("%s is not set", global.EnvUser)
	}

	if pass == "" {
		pass, err = promptPassword(user)
		if err != nil {
			return "", "", err
		}
	}
	return user, pass, nil
}

func promptPassword(user string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("%s is not set", global.EnvPass)
	}

	fmt.Printf("Password for %s: ", user)
	passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println() // Print newline after password input
	if err != nil {
		return "", fmt.Errorf("error reading password: %w", err)
	}

	if len(passwordBytes) == 0 {
		return "", errors.New("password cannot be empty")
	}
	return string(passwordBytes), nil
}

func fatal(err error) {
	fmt.Printf("Error: %s\n\n", err.Error())
	os.Exit(1)
}

func RefreshToken(rToken string) string {

	// Send a refresh request to the server
	req := schema.RefreshRequest{RefreshToken: rToken}

	// Post the refresh request to the server
	c := communications.New()
	code, data, err := c.Post(schema.EndpointRefresh, req)
	if err != nil {
		fmt.Printf("Token refresh failed: %s\n", err.Error())
		return ""
	}

	if code != 200 {
		// The refresh token was invalid or another error occurred
		// Force the user to log in again
		return ""
	}

	// Unmarshal the response body into a LoginResponse object
	var loginResp schema.APITokenRefreshResponse
	err = json.Unmarshal(data, &loginResp)
	if err != nil {
		fatal(fmt.Errorf("deserialization failed %w", err))
	}

	return loginResp.AccessToken
}
