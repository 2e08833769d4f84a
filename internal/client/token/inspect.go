// Package token peeks inside a bearer token for display purposes. The
// session layer treats the token as opaque and the server stays the only
// authority on its validity; the data extracted here is informational only
// (e.g. for the "status" command).
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotInspectable reports a token whose claims cannot be decoded locally.
var ErrNotInspectable = errors.New("token is not inspectable")

// Info is the informational subset of the token's claims.
type Info struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry in the past. A token
// without an expiry claim is never reported as expired.
func (i *Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(now)
}

// Inspect decodes the claims of a JWT-shaped bearer token without verifying
// its signature.
func Inspect(raw string) (*Info, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, ErrNotInspectable
	}

	info := &Info{}

	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}

	return info, nil
}
