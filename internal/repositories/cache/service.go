// Package cache provides a Redis-backed lookup cache for remote customer
// references. The processor is the source of truth; the cache only spares the
// list-by-email round trip on repeated card and charge requests.
package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

func customerKey(email string) string {
	return fmt.Sprintf("customer:email:%s", email)
}

// GetCustomerID returns the cached remote customer ID for an email, if any.
// Cache failures are logged and reported as misses.
func (s *CacheService) GetCustomerID(ctx context.Context, email string) (string, bool) {
	id, err := s.client.Get(ctx, customerKey(email)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache: get customer id: %v", err)
		}
		return "", false
	}
	return id, true
}

// SetCustomerID caches the remote customer ID for an email.
func (s *CacheService) SetCustomerID(ctx context.Context, email, customerID string) {
	if err := s.client.Set(ctx, customerKey(email), customerID, s.ttl).Err(); err != nil {
		log.Printf("cache: set customer id: %v", err)
	}
}

// InvalidateCustomer drops the cached customer ID, used after the remote
// customer is deleted.
func (s *CacheService) InvalidateCustomer(ctx context.Context, email string) {
	if err := s.client.Del(ctx, customerKey(email)).Err(); err != nil {
		log.Printf("cache: invalidate customer: %v", err)
	}
}

// FlushAll flushes all keys from the cache.
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// Close closes the Redis client connection.
func (s *CacheService) Close() error {
	return s.client.Close()
}
