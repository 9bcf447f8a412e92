package ports

import (
	"context"
	"flight-route-service/internal/domain"
)

// Port: a boundary for persisting quoted prices across process restarts.
// A miss is (Quote{}, false, nil); errors are reserved for backend failures.
type PriceCache interface {
	Get(ctx context.Context, flight domain.Flight) (domain.Quote, bool, error)
	Put(ctx context.Context, flight domain.Flight, quote domain.Quote) error
}
