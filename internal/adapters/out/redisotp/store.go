// Package redisotp implements the OTP code store on Redis.
// Codes live under a per-phone key with a TTL, so expiry needs no sweeper,
// and a successful verification deletes the key so codes are single use.
package redisotp

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Store implements ports.OTPStore backed by a Redis client.
type Store struct {
	client *redis.Client
}

// NewStore creates an OTP store over the given Redis client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Put stores the code for the phone, replacing any previous pending code
// and resetting the TTL.
func (s *Store) Put(ctx context.Context, phone string, code string, ttl time.Duration) error {
	return s.client.Set(ctx, key(phone), code, ttl).Err()
}

// Verify checks the code for the phone. A match deletes the stored code.
// An expired or missing code reports false, not an error. The comparison
// is constant time so the code cannot be probed byte by byte.
func (s *Store) Verify(ctx context.Context, phone string, code string) (bool, error) {
	stored, err := s.client.Get(ctx, key(phone)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return false, nil
	}

	if err := s.client.Del(ctx, key(phone)).Err(); err != nil {
		return false, err
	}

	return true, nil
}

func key(phone string) string {
	return fmt.Sprintf("otp:%s", phone)
}
