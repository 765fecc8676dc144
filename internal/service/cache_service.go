package service

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// CacheService is the cache-aside surface used by usecases and the
// invalidation coordinator. A cache outage must never fail a request, so
// the interface has no error returns: a failed Get is a miss, failed writes
// and deletes are logged and swallowed, and the TTL is the correctness
// backstop for anything eviction missed.
type CacheService interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
	KeysByPrefix(ctx context.Context, prefix string) []string
}

type redisCacheService struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewRedisCacheService(client *redis.Client, log *logrus.Logger) CacheService {
	return &redisCacheService{
		client: client,
		log:    log,
	}
}

func (s *redisCacheService) Get(ctx context.Context, key string) (string, bool) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warnf("Cache get failed for %s, treating as miss: %+v", key, err)
		}
		return "", false
	}
	return val, true
}

func (s *redisCacheService) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		s.log.Warnf("Cache set failed for %s: %+v", key, err)
	}
}

func (s *redisCacheService) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		s.log.Warnf("Cache delete failed for %d keys: %+v", len(keys), err)
	}
}

// KeysByPrefix uses SCAN rather than KEYS so a large keyspace does not
// block the server. Partial results on scan failure are still returned so
// invalidation evicts whatever was found.
func (s *redisCacheService) KeysByPrefix(ctx context.Context, prefix string) []string {
	var keys []string
	iter := s.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		s.log.Warnf("Cache scan failed for prefix %s: %+v", prefix, err)
	}
	return keys
}
