package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/innstack/hotel-system/internal/core/domain"
)

// CheckinTokenStore holds one-time QR check-in tokens in Redis.
// Key format: checkin:<token> → booking id, expiring after the TTL
// passed at issue time. Redeeming deletes the key atomically (GETDEL),
// so a token can never be used twice.
type CheckinTokenStore struct {
	client *redis.Client
}

// NewCheckinTokenStore creates a CheckinTokenStore wrapping the given
// Redis client.
func NewCheckinTokenStore(client *redis.Client) *CheckinTokenStore {
	return &CheckinTokenStore{client: client}
}

// Issue generates a fresh opaque token bound to bookingID. SETNX guards
// against the (vanishingly unlikely) token collision.
func (s *CheckinTokenStore) Issue(ctx context.Context, bookingID string, ttl time.Duration) (string, error) {
	for range [3]struct{}{} {
		token, err := newToken()
		if err != nil {
			return "", err
		}
		ok, err := s.client.SetNX(ctx, s.key(token), bookingID, ttl).Result()
		if err != nil {
			return "", fmt.Errorf("issue checkin token: %w", err)
		}
		if ok {
			return token, nil
		}
	}
	return "", errors.New("issue checkin token: could not generate a unique token")
}

// Redeem consumes the token and returns the booking it was issued for.
// A missing or already-redeemed token yields ErrCheckinTokenInvalid.
func (s *CheckinTokenStore) Redeem(ctx context.Context, token string) (string, error) {
	bookingID, err := s.client.GetDel(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrCheckinTokenInvalid
		}
		return "", fmt.Errorf("redeem checkin token: %w", err)
	}
	return bookingID, nil
}

func (s *CheckinTokenStore) key(token string) string {
	return "checkin:" + token
}

func newToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
