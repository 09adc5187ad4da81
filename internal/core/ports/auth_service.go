package ports

import (
	"context"

	"github.com/lojinha/catalog-api/internal/core/domain"
)

// AuthService covers credential verification and the bearer-token lifecycle.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)

	// Login verifies the credentials and issues a token with full abilities.
	// The returned string is the token plaintext, shown exactly once.
	// Unknown email and wrong password are indistinguishable to the caller:
	// both fail with domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)

	// Logout revokes all of the user's tokens. Idempotent.
	Logout(ctx context.Context, userID int64) error

	// Authenticate resolves a presented plaintext token. Missing, unknown,
	// and expired tokens fail with domain.ErrUnauthorized.
	Authenticate(ctx context.Context, plaintext string) (*domain.Token, error)
}
