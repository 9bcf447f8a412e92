package pricing

import (
	"context"
	"fmt"

	"flight-route-service/internal/domain"
)

// FixtureQuote models one priced flight in a deterministic test table.
type FixtureQuote struct {
	From, To string
	Date     domain.Date
	Price    float64
	Direct   bool
}

// FixtureProvider is the deterministic PriceProvider used in tests. A lookup
// miss is an ErrFlightNotModeled error, never a silent default. Calls are
// counted per flight so tests can assert how often the solver priced an edge.
type FixtureProvider struct {
	table map[domain.Flight]domain.Quote
	calls map[domain.Flight]int
}

func NewFixtureProvider(quotes []FixtureQuote) *FixtureProvider {
	table := make(map[domain.Flight]domain.Quote, len(quotes))
	for _, q := range quotes {
		f := domain.Flight{Origin: q.From, Destination: q.To, Date: q.Date}
		table[f] = domain.Quote{MinPrice: q.Price, Direct: q.Direct}
	}
	return &FixtureProvider{
		table: table,
		calls: make(map[domain.Flight]int),
	}
}

func (p *FixtureProvider) GetPrice(ctx context.Context, flight domain.Flight) (domain.Quote, error) {
	p.calls[flight]++

	q, ok := p.table[flight]
	if !ok {
		return domain.Quote{}, fmt.Errorf("%w: %s", ErrFlightNotModeled, flight)
	}
	return q, nil
}

// Calls reports how many times flight has been priced.
func (p *FixtureProvider) Calls(flight domain.Flight) int {
	return p.calls[flight]
}

// TotalCalls reports the number of GetPrice invocations across all flights.
func (p *FixtureProvider) TotalCalls() int {
	total := 0
	for _, n := range p.calls {
		total += n
	}
	return total
}
