package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformedToken is returned when the token cannot be decoded.
	ErrMalformedToken = errors.New("malformed token")
	// ErrTokenExpired is returned when the token's exp claim is in the past.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMismatch is returned when the token was issued for another user.
	ErrTokenMismatch = errors.New("token does not belong to user")
)

// Claims mirrors the claims wirechat servers put into session tokens.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	IsGuest  bool   `json:"is_guest"`
	jwt.RegisteredClaims
}

// InspectToken decodes tokenString without verifying its signature.
// The server remains the authority on validity; this only catches tokens that
// are certainly unusable before a request is made.
func InspectToken(tokenString string, now time.Time) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	if claims.ExpiresAt != nil && !now.Before(claims.ExpiresAt.Time) {
		return claims, ErrTokenExpired
	}

	return claims, nil
}

// CheckOwner verifies that claims were issued for username.
// Tokens without a username claim are accepted.
func CheckOwner(claims *Claims, username string) error {
	if claims.Username != "" && claims.Username != username {
		return ErrTokenMismatch
	}
	return nil
}
