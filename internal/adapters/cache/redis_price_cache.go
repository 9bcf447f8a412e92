package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"flight-route-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisPriceCache stores flight price quotes as JSON values keyed by the
// flight triple. A non-positive TTL keeps entries until evicted.
type RedisPriceCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisPriceCache(client *redis.Client, ttl time.Duration) *RedisPriceCache {
	return &RedisPriceCache{redis: client, ttl: ttl}
}

type cachedQuote struct {
	MinPrice float64 `json:"min_price"`
	Direct   bool    `json:"direct"`
}

func priceKey(flight domain.Flight) string {
	return fmt.Sprintf("price:%s:%s:%s", flight.Origin, flight.Destination, flight.Date)
}

func (c *RedisPriceCache) Get(ctx context.Context, flight domain.Flight) (domain.Quote, bool, error) {
	data, err := c.redis.Get(ctx, priceKey(flight)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Quote{}, false, nil
		}
		return domain.Quote{}, false, fmt.Errorf("redis get price: %w", err)
	}

	var cached cachedQuote
	if err := json.Unmarshal([]byte(data), &cached); err != nil {
		return domain.Quote{}, false, fmt.Errorf("unmarshal cached quote: %w", err)
	}

	return domain.Quote{MinPrice: cached.MinPrice, Direct: cached.Direct}, true, nil
}

func (c *RedisPriceCache) Put(ctx context.Context, flight domain.Flight, quote domain.Quote) error {
	data, err := json.Marshal(cachedQuote{MinPrice: quote.MinPrice, Direct: quote.Direct})
	if err != nil {
		return fmt.Errorf("marshal quote for cache: %w", err)
	}

	ttl := c.ttl
	if ttl < 0 {
		ttl = 0
	}

	if err := c.redis.Set(ctx, priceKey(flight), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set price: %w", err)
	}

	return nil
}
