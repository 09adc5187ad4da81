package domain

import (
	"errors"
	"time"
)

// AbilityAll grants every ability.
const AbilityAll = "*"

var ErrTokenNotFound = errors.New("token not found")
var ErrUnauthorized = errors.New("unauthorized")

// Token is the server-side record of an opaque bearer token. Only a hash of
// the plaintext is stored; the plaintext leaves the system exactly once, in
// the login response.
type Token struct {
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Abilities []string  `json:"abilities"`
	ExpiresAt time.Time `json:"expires_at,omitempty"` // zero value = never expires
}

// Can reports whether the token grants the given ability, either explicitly
// or through the wildcard.
func (t *Token) Can(ability string) bool {
	for _, a := range t.Abilities {
		if a == AbilityAll || a == ability {
			return true
		}
	}
	return false
}

// Expired reports whether the token's absolute expiry instant has passed.
// Tokens without an expiry never expire.
func (t *Token) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && now.After(t.ExpiresAt)
}
