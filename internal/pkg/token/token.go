// Package token issues and verifies the two JWT kinds the auth protocol
// uses. Access and refresh tokens are signed with distinct secrets so a
// leaked access token can never be replayed against the refresh endpoint.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrExpired = errors.New("token has expired")
var ErrInvalid = errors.New("invalid token")

// Claims is the decoded payload shared by both token kinds.
type Claims struct {
	UserID string
	Role   string
}

// Issuer mints and verifies signed, time-bounded tokens (HS256).
type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
}

func NewIssuer(accessSecret, refreshSecret string, accessTTL time.Duration) *Issuer {
	return &Issuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
	}
}

// IssueAccess mints a short-lived access token for userID with role.
func (i *Issuer) IssueAccess(userID, role string) (string, error) {
	return sign(i.accessSecret, userID, role, i.accessTTL)
}

// IssueRefresh mints a refresh token with the caller-chosen lifetime
// (1 day, or 30 days when the session is remembered).
func (i *Issuer) IssueRefresh(userID, role string, ttl time.Duration) (string, error) {
	return sign(i.refreshSecret, userID, role, ttl)
}

// VerifyAccess decodes an access token, distinguishing ErrExpired from
// ErrInvalid so callers can message the difference.
func (i *Issuer) VerifyAccess(tokenString string) (Claims, error) {
	return verify(i.accessSecret, tokenString)
}

// VerifyRefresh decodes a refresh token.
func (i *Issuer) VerifyRefresh(tokenString string) (Claims, error) {
	return verify(i.refreshSecret, tokenString)
}

func sign(secret []byte, userID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": userID,
		"role":   role,
		"iat":    now.Unix(),
		"exp":    now.Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func verify(secret []byte, tokenString string) (Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, ErrInvalid
	}
	if !tkn.Valid {
		return Claims{}, ErrInvalid
	}

	userID, _ := claims["userId"].(string)
	role, _ := claims["role"].(string)
	if userID == "" {
		return Claims{}, ErrInvalid
	}
	return Claims{UserID: userID, Role: role}, nil
}
