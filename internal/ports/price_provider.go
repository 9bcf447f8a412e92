package ports

import (
	"context"
	"flight-route-service/internal/domain"
)

// Contract for quoting the cheapest price of a specific flight.
//
// Implementations must be idempotent from the caller's perspective: repeated
// calls with an identical flight return the same quote without re-issuing an
// external query. Transient rate limiting is handled internally and never
// surfaces; any other failure is returned as an error and must not be
// retried.
type PriceProvider interface {
	// Return the cheapest quote for one flight.
	GetPrice(ctx context.Context, flight domain.Flight) (domain.Quote, error)
}

// Optional extension of PriceProvider that supports one-shot multi-leg
// requests. Callers only ever depend on the single-flight contract; batching
// is an implementation economy.
type BatchPriceProvider interface {
	PriceProvider
	// Return quotes for several flights, in input order.
	GetPrices(ctx context.Context, flights []domain.Flight) ([]domain.Quote, error)
}
