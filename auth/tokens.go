// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Session roles
const (
	RoleVoter = "voter"
	RoleAdmin = "admin"
)

const tokenTTL = time.Hour

// Claims carried by a session token.
type Claims struct {
	Subject   string // voter or administrator ID
	Role      string
	Username  string
	RegNumber string // voters only
}

// NewToken signs an HS256 session token for the given claims.
func NewToken(secret []byte, c Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":        c.Subject,
		"role":       c.Role,
		"username":   c.Username,
		"reg_number": c.RegNumber,
		"exp":        time.Now().Add(tokenTTL).Unix(),
	})
	return token.SignedString(secret)
}

// ParseToken validates a session token and returns its claims. The role
// argument restricts which kind of session is accepted, so a voter
// token can never reach an administrative handler.
func ParseToken(secret []byte, tokenString, role string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	var c Claims
	c.Subject, _ = mc["sub"].(string)
	c.Role, _ = mc["role"].(string)
	c.Username, _ = mc["username"].(string)
	c.RegNumber, _ = mc["reg_number"].(string)

	if c.Subject == "" || c.Role != role {
		return Claims{}, ErrInvalidToken
	}
	return c, nil
}
