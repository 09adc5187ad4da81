package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lojinha/catalog-api/internal/core/domain"
)

// TokenStore keeps issued bearer tokens in Redis.
//
// Key layout:
//
//	token:<sha256-hex>        → JSON token record, TTL = time to expiry
//	user_tokens:<user_id>     → set of the user's token keys (bulk revoke)
//
// Expiring tokens carry a native TTL so Redis reclaims them on its own; the
// per-user set may briefly reference reclaimed keys, which RevokeAll and
// Find both tolerate.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func (s *TokenStore) Save(ctx context.Context, hash string, token *domain.Token) error {
	payload, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}

	var ttl time.Duration
	if !token.ExpiresAt.IsZero() {
		ttl = time.Until(token.ExpiresAt)
		if ttl <= 0 {
			return nil // already expired, nothing to store
		}
	}

	key := tokenKey(hash)
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, key, payload, ttl)
	pipe.SAdd(ctx, userKey(token.UserID), key)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *TokenStore) Find(ctx context.Context, hash string) (*domain.Token, error) {
	payload, err := s.client.Get(ctx, tokenKey(hash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, fmt.Errorf("find token: %w", err)
	}

	var token domain.Token
	if err := json.Unmarshal(payload, &token); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return &token, nil
}

func (s *TokenStore) RevokeAll(ctx context.Context, userID int64) error {
	setKey := userKey(userID)

	keys, err := s.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return fmt.Errorf("list user tokens: %w", err)
	}

	if err := s.client.Del(ctx, append(keys, setKey)...).Err(); err != nil {
		return fmt.Errorf("revoke tokens: %w", err)
	}
	return nil
}

func tokenKey(hash string) string {
	return "token:" + hash
}

func userKey(userID int64) string {
	return fmt.Sprintf("user_tokens:%d", userID)
}
