package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lojinha/catalog-api/internal/core/domain"
	"github.com/lojinha/catalog-api/internal/core/ports"
)

const loginTokenName = "default"

// AuthService implements registration, login, logout, and token resolution.
// Tokens are opaque random strings; only their SHA-256 hash reaches the
// store, so a leaked store never reveals a usable token.
type AuthService struct {
	repo     ports.AuthRepository
	tokens   ports.TokenStore
	tokenTTL time.Duration // zero = tokens never expire
	now      func() time.Time
}

func NewAuthService(repo ports.AuthRepository, tokens ports.TokenStore, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		repo:     repo,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		now:      time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.repo.Create(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same failure as a wrong password: the response must not
			// reveal whether the account exists.
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	plaintext, err := generateToken()
	if err != nil {
		return "", err
	}

	token := &domain.Token{
		UserID:    user.ID,
		Name:      loginTokenName,
		Abilities: []string{domain.AbilityAll},
	}
	if s.tokenTTL > 0 {
		token.ExpiresAt = s.now().UTC().Add(s.tokenTTL)
	}

	if err := s.tokens.Save(ctx, hashToken(plaintext), token); err != nil {
		return "", fmt.Errorf("save token: %w", err)
	}

	return plaintext, nil
}

func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	return s.tokens.RevokeAll(ctx, userID)
}

func (s *AuthService) Authenticate(ctx context.Context, plaintext string) (*domain.Token, error) {
	if plaintext == "" {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.tokens.Find(ctx, hashToken(plaintext))
	if err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	// The store's TTL normally handles this; the explicit check covers
	// stores without native expiry and clock-edge lookups.
	if token.Expired(s.now()) {
		return nil, domain.ErrUnauthorized
	}

	return token, nil
}

// generateToken returns 40 hex chars from a CSPRNG.
func generateToken() (string, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func hashToken(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
