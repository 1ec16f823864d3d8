package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions configures a RedisStore.
type RedisOptions struct {
	// Prefix namespaces slot keys, default "save".
	Prefix string
	// TTL expires slots when positive; zero keeps them forever.
	TTL time.Duration
}

// RedisStore keeps save slots in Redis, for hosts that run the engine
// behind a shared service rather than a local install.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client, opts RedisOptions) *RedisStore {
	if opts.Prefix == "" {
		opts.Prefix = "save"
	}
	return &RedisStore{client: client, prefix: opts.Prefix, ttl: opts.TTL}
}

func (s *RedisStore) key(slot string) string {
	return fmt.Sprintf("%s:%s", s.prefix, slot)
}

func (s *RedisStore) Put(ctx context.Context, slot string, data Data) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode save data: %w", err)
	}
	if err := s.client.Set(ctx, s.key(slot), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("set save slot: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, slot string) (Data, error) {
	payload, err := s.client.Get(ctx, s.key(slot)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Data{}, ErrSlotNotFound
	}
	if err != nil {
		return Data{}, fmt.Errorf("get save slot: %w", err)
	}
	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		return Data{}, fmt.Errorf("decode save data: %w", err)
	}
	return data, nil
}

func (s *RedisStore) Delete(ctx context.Context, slot string) error {
	deleted, err := s.client.Del(ctx, s.key(slot)).Result()
	if err != nil {
		return fmt.Errorf("delete save slot: %w", err)
	}
	if deleted == 0 {
		return ErrSlotNotFound
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	keys, err := s.client.Keys(ctx, s.prefix+":*").Result()
	if err != nil {
		return nil, fmt.Errorf("list save slots: %w", err)
	}
	slots := make([]string, 0, len(keys))
	for _, key := range keys {
		slots = append(slots, strings.TrimPrefix(key, s.prefix+":"))
	}
	sort.Strings(slots)
	return slots, nil
}
