package store

import (
	"context"
	"errors"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each document under its own redis key, no expiry.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string, db int) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisStore{client: client}
}

func (s *RedisStore) Load(key string, def []byte) []byte {
	raw, err := s.client.Get(context.Background(), key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("⚠️ store: load %q failed, using default: %v", key, err)
		}
		return def
	}
	return raw
}

func (s *RedisStore) Save(key string, value []byte) error {
	return s.client.Set(context.Background(), key, value, 0).Err()
}
