package cache

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"flight-route-service/internal/domain"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func TestSqlitePriceCacheRoundTrip(t *testing.T) {
	c := NewSqlitePriceCache(newTestDB(t))
	ctx := context.Background()

	flight := domain.Flight{
		Origin:      "JFK",
		Destination: "YVR",
		Date:        domain.NewDate(2023, time.August, 10),
	}

	if _, ok, err := c.Get(ctx, flight); err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	want := domain.Quote{MinPrice: 312.5, Direct: true}
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

func TestSqlitePriceCacheUpsert(t *testing.T) {
	c := NewSqlitePriceCache(newTestDB(t))
	ctx := context.Background()

	flight := domain.Flight{
		Origin:      "JFK",
		Destination: "YVR",
		Date:        domain.NewDate(2023, time.August, 10),
	}

	if err := c.Put(ctx, flight, domain.Quote{MinPrice: 100}); err != nil {
		t.Fatalf("first put: %v", err)
	}
	if err := c.Put(ctx, flight, domain.Quote{MinPrice: 90, Direct: true}); err != nil {
		t.Fatalf("second put: %v", err)
	}

	got, ok, err := c.Get(ctx, flight)
	if err != nil || !ok {
		t.Fatalf("get after upsert: ok=%v err=%v", ok, err)
	}
	if got.MinPrice != 90 || !got.Direct {
		t.Fatalf("got %+v, want the updated quote", got)
	}
}

func TestSqlitePriceCacheDistinguishesDates(t *testing.T) {
	c := NewSqlitePriceCache(newTestDB(t))
	ctx := context.Background()

	day1 := domain.Flight{Origin: "JFK", Destination: "YVR", Date: domain.NewDate(2023, time.August, 10)}
	day2 := domain.Flight{Origin: "JFK", Destination: "YVR", Date: domain.NewDate(2023, time.August, 11)}

	if err := c.Put(ctx, day1, domain.Quote{MinPrice: 100}); err != nil {
		t.Fatalf("put: %v", err)
	}

	if _, ok, err := c.Get(ctx, day2); err != nil || ok {
		t.Fatalf("same pair on another date must miss, got ok=%v err=%v", ok, err)
	}
}

func TestSqlitePriceCacheNilDB(t *testing.T) {
	c := NewSqlitePriceCache(nil)

	flight := domain.Flight{Origin: "JFK", Destination: "YVR", Date: domain.NewDate(2023, time.August, 10)}
	if _, _, err := c.Get(context.Background(), flight); err == nil {
		t.Fatal("expected error for nil db")
	}
	if err := c.Put(context.Background(), flight, domain.Quote{}); err == nil {
		t.Fatal("expected error for nil db")
	}
}
