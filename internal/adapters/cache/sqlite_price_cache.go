package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"flight-route-service/internal/domain"
	"flight-route-service/internal/platform/obs"
)

// SQLite backed cache for flight price quotes. The flight (origin,
// destination, date) triple is the primary key; dates are stored as ISO 8601
// text.
type SqlitePriceCache struct {
	DB *sql.DB
}

func NewSqlitePriceCache(db *sql.DB) *SqlitePriceCache {
	return &SqlitePriceCache{DB: db}
}

// Fetch the cached quote for one flight.
func (s *SqlitePriceCache) Get(ctx context.Context, flight domain.Flight) (_ domain.Quote, _ bool, err error) {
	defer obs.Time(ctx, "price.cache.Get")(&err)

	if s.DB == nil {
		return domain.Quote{}, false, errors.New("price cache: db is nil")
	}

	q := `
	SELECT min_price, direct
    FROM price_cache
    WHERE origin = ?
        AND destination = ?
        AND flight_date = ?;
	`

	var minPrice float64
	var direct int
	err = s.DB.QueryRowContext(ctx, q, flight.Origin, flight.Destination, flight.Date.String()).
		Scan(&minPrice, &direct)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Quote{}, false, nil
	}
	if err != nil {
		return domain.Quote{}, false, fmt.Errorf("get price cache: query price_cache table: %w", err)
	}

	return domain.Quote{MinPrice: minPrice, Direct: direct != 0}, true, nil
}

// Store one quoted price.
func (s *SqlitePriceCache) Put(ctx context.Context, flight domain.Flight, quote domain.Quote) error {
	if s.DB == nil {
		return errors.New("price cache: db is nil")
	}

	q := `
	INSERT OR REPLACE INTO price_cache (
        origin,
        destination,
        flight_date,
        min_price,
        direct
    )
    VALUES (?, ?, ?, ?, ?);
	`

	direct := 0
	if quote.Direct {
		direct = 1
	}

	if _, err := s.DB.ExecContext(ctx, q, flight.Origin, flight.Destination, flight.Date.String(), quote.MinPrice, direct); err != nil {
		return fmt.Errorf("insert price cache %s: %w", flight, err)
	}

	return nil
}
