package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"learnsmate_backend/internals/configs"
	"learnsmate_backend/internals/logger"
)

// ConnectRedis opens a client and verifies it with PING.
func ConnectRedis(cfg configs.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrap(err, "redis ping failed")
	}
	logger.Log.WithField("addr", cfg.Addr).Info("redis connected")
	return rdb, nil
}
