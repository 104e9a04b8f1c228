package cache

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis подключается к Redis по адресу addr; ttl = 0 — без срока жизни
func NewRedis(addr string, ttl time.Duration) *Redis {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &Redis{client: rdb, ttl: ttl}
}

// Ping проверяет соединение
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Get возвращает промах и при отсутствии ключа, и при недоступном Redis;
// второе пишется в лог
func (r *Redis) Get(ctx context.Context, key string) (string, bool) {
	return lookup(key, r.client.Get(ctx, key))
}

func lookup(key string, cmd *redis.StringCmd) (string, bool) {
	val, err := cmd.Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		log.Printf("Warning: cache read %s failed: %v", key, err)
		return "", false
	}
	return val, true
}

func (r *Redis) Set(ctx context.Context, key string, value string) error {
	return r.client.Set(ctx, key, value, r.ttl).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
