// Package cache provides the read-through cache used by the device poll
// paths (work mode, threshold, last measurement). Devices poll on short
// intervals, so these three reads dominate traffic.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is the narrow surface the service needs. Implementations must treat
// a miss as (value="", ok=false, err=nil).
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Sensor cache keys. Writers to a sensor must invalidate all of them.
func ModeKey(sensorID int64) string      { return fmt.Sprintf("sensor:%d:mode", sensorID) }
func ThresholdKey(sensorID int64) string { return fmt.Sprintf("sensor:%d:treshold", sensorID) }
func LatestKey(sensorID int64) string    { return fmt.Sprintf("sensor:%d:last", sensorID) }

// SensorKeys returns every cache key derived from a sensor id.
func SensorKeys(sensorID int64) []string {
	return []string{ModeKey(sensorID), ThresholdKey(sensorID), LatestKey(sensorID)}
}

// RedisCache backs the Cache interface with a redis instance.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache wraps an existing redis client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache get %s: %w", key, err)
	}
	return value, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// Noop is used when no redis host is configured; every read misses.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (*Noop) Get(ctx context.Context, key string) (string, bool, error) { return "", false, nil }
func (*Noop) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return nil
}
func (*Noop) Delete(ctx context.Context, keys ...string) error { return nil }
