package models

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSession is returned when no session token is stored on the device.
var ErrNoSession = errors.New("no session token")

// Session is the locally stored authentication state. The sync engine only
// needs to know whether a valid token exists; the token is never verified on
// the device since the signing key belongs to the server.
type Session struct {
	// SignedString is the compact JWS form sent as a bearer token.
	SignedString string `json:"-"`

	// Subject is the "sub" claim, typically the account or terminal id.
	Subject string `json:"subject,omitempty"`

	// ExpiresAt is the "exp" claim. Nil means the token does not expire.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// ParseSession decodes the claims of token without verifying its signature.
func ParseSession(token string) (Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Session{}, ErrNoSession
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return Session{}, err
	}

	s := Session{SignedString: token, Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		s.ExpiresAt = &exp
	}
	return s, nil
}

// Valid reports whether the session has a token that has not expired at now.
func (s Session) Valid(now time.Time) bool {
	if s.SignedString == "" {
		return false
	}
	if s.ExpiresAt == nil {
		return true
	}
	return now.Before(*s.ExpiresAt)
}

// String returns the bearer token.
func (s Session) String() string {
	return s.SignedString
}
