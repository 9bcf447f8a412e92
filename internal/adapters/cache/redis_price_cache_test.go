package cache

import (
	"context"
	"testing"
	"time"

	"flight-route-service/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisPriceCacheRoundTrip(t *testing.T) {
	_, client := newTestRedis(t)
	c := NewRedisPriceCache(client, time.Hour)
	ctx := context.Background()

	flight := domain.Flight{
		Origin:      "JFK",
		Destination: "YVR",
		Date:        domain.NewDate(2023, time.August, 10),
	}

	if _, ok, err := c.Get(ctx, flight); err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	want := domain.Quote{MinPrice: 249.99, Direct: false}
	if err := c.Put(ctx, flight, want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, flight)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || got != want {
		t.Fatalf("got %+v ok=%v, want %+v", got, ok, want)
	}
}

func TestRedisPriceCacheExpiry(t *testing.T) {
	mr, client := newTestRedis(t)
	c := NewRedisPriceCache(client, time.Minute)
	ctx := context.Background()

	flight := domain.Flight{
		Origin:      "JFK",
		Destination: "YVR",
		Date:        domain.NewDate(2023, time.August, 10),
	}

	if err := c.Put(ctx, flight, domain.Quote{MinPrice: 100}); err != nil {
		t.Fatalf("put: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, ok, err := c.Get(ctx, flight); err != nil || ok {
		t.Fatalf("expected expired entry to miss, got ok=%v err=%v", ok, err)
	}
}

func TestRedisPriceCacheKeyShape(t *testing.T) {
	mr, client := newTestRedis(t)
	c := NewRedisPriceCache(client, 0)
	ctx := context.Background()

	flight := domain.Flight{
		Origin:      "JFK",
		Destination: "YVR",
		Date:        domain.NewDate(2023, time.August, 10),
	}

	if err := c.Put(ctx, flight, domain.Quote{MinPrice: 100}); err != nil {
		t.Fatalf("put: %v", err)
	}

	if !mr.Exists("price:JFK:YVR:2023-08-10") {
		t.Fatalf("expected key price:JFK:YVR:2023-08-10, have %v", mr.Keys())
	}
}
