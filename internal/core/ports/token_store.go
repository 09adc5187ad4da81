package ports

import (
	"context"

	"github.com/lojinha/catalog-api/internal/core/domain"
)

// TokenStore persists issued bearer tokens keyed by the hash of their
// plaintext. Implementations must support revoking every token of a user in
// one call (logout destroys all of the caller's tokens, not just the
// presented one).
type TokenStore interface {
	// Save stores the token under its hash. Tokens with an expiry must stop
	// resolving after that instant.
	Save(ctx context.Context, hash string, token *domain.Token) error

	// Find resolves a token by hash. Returns domain.ErrTokenNotFound for
	// unknown or expired hashes.
	Find(ctx context.Context, hash string) (*domain.Token, error)

	// RevokeAll deletes every token belonging to the user. Revoking a user
	// with no tokens is a no-op, not an error.
	RevokeAll(ctx context.Context, userID int64) error
}
