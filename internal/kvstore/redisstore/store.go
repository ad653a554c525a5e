// Package redisstore provides a Redis-backed implementation of kvstore.Store
// for deployments that already run Redis and want the cart to survive
// storefront restarts without a local database file.
package redisstore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Store is the Redis implementation of kvstore.Store. Keys are namespaced
// with the service name so one Redis can serve several storefronts.
type Store struct {
	client      *redis.Client
	serviceName string
}

func New(addr, serviceName string) *Store {
	return &Store{
		client:      redis.NewClient(&redis.Options{Addr: addr}),
		serviceName: serviceName,
	}
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.namespacedKey(key)).Result()
	if err == redis.Nil {
		return "", nil
	}

	if err != nil {
		return "", err
	}

	return value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	// Storefront state has no expiry; the cart lives until the shopper
	// clears it.
	return s.client.Set(ctx, s.namespacedKey(key), value, 0).Err()
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.namespacedKey(key)).Err()
}

func (s *Store) namespacedKey(key string) string {
	return fmt.Sprintf("%s:%s", s.serviceName, key)
}
