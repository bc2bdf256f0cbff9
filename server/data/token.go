/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package data

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/neuroinfo/dwiqc/common/schema"
	"github.com/neuroinfo/dwiqc/server/global"
)

// CustomClaims includes jwt.RegisteredClaims and adds custom fields
type CustomClaims struct {
	jwt.RegisteredClaims
	Role    int    `json:"role"`
	Purpose string `json:"purpose"`
}

type tokenRequest struct {
	subject string
	role    int
	purpose string
}

// createToken signs a token whose lifetime depends on its purpose
func (d *Data) createToken(request tokenRequest) (string, error) {
	var lifeTime int

	switch request.purpose {
	case schema.TokenPurposeAccess:
		lifeTime = d.conf.SC.Get(global.ConfigAccessTokenLife).Int()
	case schema.TokenPurposeRefresh:
		lifeTime = d.conf.SC.Get(global.ConfigRefreshTokenLife).Int()
	default:
		return "", errors.New("invalid token purpose")
	}

	// NotBefore is five minutes in the past to allow for clock skew
	now := time.Now()
	claims := CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   request.subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-5 * time.Minute)),
			Issuer:    global.Name,
			ID:        "T-" + uuid.New().String(),
		},
		Role:    request.role,
		Purpose: request.purpose,
	}

	if lifeTime > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(time.Duration(lifeTime) * time.Minute))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(d.jwtKey)
}

// ValidateToken validates the supplied token including its purpose and
// returns the user and role
func (d *Data) ValidateToken(tokenString string, purpose string) (string, int, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{},
		func(token *jwt.Token) (any, error) {
			return d.jwtKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(global.Name))
	if err != nil {
		return "", schema.RoleNone, err
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid && claims.Purpose == purpose {
		return claims.Subject, claims.Role, nil
	}
	return "", schema.RoleNone, errors.New("invalid token")
}

// RefreshToken exchanges a refresh token for a new access token
func (d *Data) RefreshToken(refreshToken string) (string, error) {
	subject, role, err := d.ValidateToken(refreshToken, schema.TokenPurposeRefresh)
	if err != nil {
		return "", err
	}

	if !d.database.UserActive(subject) {
		return "", fmt.Errorf("subject disabled in database: %s", subject)
	}

	return d.createToken(tokenRequest{
		subject: subject,
		role:    role,
		purpose: schema.TokenPurposeAccess,
	})
}
