package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	codeKeyPrefix     = "sms:code:"
	verifiedKeyPrefix = "sms:verified:"
	attemptsKeyPrefix = "sms:attempts:"
)

// CodeStore keeps pending verification codes and verified phone markers.
type CodeStore interface {
	SaveCode(ctx context.Context, phone, code string, ttl time.Duration) error
	// GetCode returns "" when no code is pending.
	GetCode(ctx context.Context, phone string) (string, error)
	DeleteCode(ctx context.Context, phone string) error
	MarkVerified(ctx context.Context, phone string, ttl time.Duration) error
	IsVerified(ctx context.Context, phone string) (bool, error)
	ClearVerified(ctx context.Context, phone string) error
	// IncrAttempts counts a failed guess. The window starts at the first failure.
	IncrAttempts(ctx context.Context, phone string, window time.Duration) (int64, error)
	ClearAttempts(ctx context.Context, phone string) error
}

type RedisCodeStore struct {
	rdb redis.Cmdable
}

func NewRedisCodeStore(rdb redis.Cmdable) *RedisCodeStore {
	return &RedisCodeStore{rdb: rdb}
}

func (s *RedisCodeStore) SaveCode(ctx context.Context, phone, code string, ttl time.Duration) error {
	return s.rdb.Set(ctx, codeKeyPrefix+phone, code, ttl).Err()
}

func (s *RedisCodeStore) GetCode(ctx context.Context, phone string) (string, error) {
	v, err := s.rdb.Get(ctx, codeKeyPrefix+phone).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return v, err
}

func (s *RedisCodeStore) DeleteCode(ctx context.Context, phone string) error {
	return s.rdb.Del(ctx, codeKeyPrefix+phone).Err()
}

func (s *RedisCodeStore) MarkVerified(ctx context.Context, phone string, ttl time.Duration) error {
	return s.rdb.Set(ctx, verifiedKeyPrefix+phone, "1", ttl).Err()
}

func (s *RedisCodeStore) IsVerified(ctx context.Context, phone string) (bool, error) {
	n, err := s.rdb.Exists(ctx, verifiedKeyPrefix+phone).Result()
	return n > 0, err
}

func (s *RedisCodeStore) ClearVerified(ctx context.Context, phone string) error {
	return s.rdb.Del(ctx, verifiedKeyPrefix+phone).Err()
}

func (s *RedisCodeStore) IncrAttempts(ctx context.Context, phone string, window time.Duration) (int64, error) {
	key := attemptsKeyPrefix + phone
	n, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		if err := s.rdb.Expire(ctx, key, window).Err(); err != nil {
			return n, err
		}
	}
	return n, nil
}

func (s *RedisCodeStore) ClearAttempts(ctx context.Context, phone string) error {
	return s.rdb.Del(ctx, attemptsKeyPrefix+phone).Err()
}
