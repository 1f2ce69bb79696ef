/*
Copyright (c) 2025 Proyecto Rodrigo. All rights reserved.
Licensed under the MIT License, see LICENSE file in the project root for details.
*/
package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenExpiration = 30 * time.Minute

var (
	ErrInvalidToken = errors.New("invalid token")
)

// MonitorToken signs a token granting access to the live conversation
// monitor. Exposed as a function so the CLI can issue tokens without a
// running service.
func MonitorToken(secret string, expiration time.Duration) (string, time.Time, error) {
	if expiration == 0 {
		expiration = defaultTokenExpiration
	}

	now := time.Now()
	expiresAt := now.Add(expiration)
	claims := jwt.MapClaims{
		"iss": "polizabot",
		"sub": "monitor",
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	return tokenString, expiresAt, err
}

func (c *Controller) GenerateMonitorToken(expiration time.Duration) (string, time.Time, error) {
	return MonitorToken(c.config.Secret(), expiration)
}

func (c *Controller) ValidateMonitorToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(c.config.Secret()), nil
	})

	if err != nil {
		return ErrInvalidToken
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if claims["iss"] != "polizabot" || claims["sub"] != "monitor" {
			return ErrInvalidToken
		}

		return nil
	}

	return ErrInvalidToken
}
