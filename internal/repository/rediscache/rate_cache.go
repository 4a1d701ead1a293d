package rediscache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const benchmarkRateKey = "rates:benchmark"

// RateCache caches the benchmark lending rate in Redis with a TTL
type RateCache struct {
	client *redis.Client
}

// NewRateCache creates a new RateCache
func NewRateCache(client *redis.Client) *RateCache {
	return &RateCache{client: client}
}

// Get returns the cached rate and whether a cached value was present
func (c *RateCache) Get(ctx context.Context) (float64, bool, error) {
	value, err := c.client.Get(ctx, benchmarkRateKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get cached rate: %w", err)
	}

	rate, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false, fmt.Errorf("failed to parse cached rate: %w", err)
	}

	return rate, true, nil
}

// Set stores the rate with the given TTL
func (c *RateCache) Set(ctx context.Context, rate float64, ttl time.Duration) error {
	value := strconv.FormatFloat(rate, 'f', -1, 64)

	if err := c.client.Set(ctx, benchmarkRateKey, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache rate: %w", err)
	}

	return nil
}
