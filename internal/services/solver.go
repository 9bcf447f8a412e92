package services

import (
	"container/heap"
	"context"
	"errors"
	"fmt"

	"flight-route-service/internal/domain"
	"flight-route-service/internal/ports"
)

// ErrInfeasibleItinerary is returned when no route reaches the final anchor
// under the given constraints. Over-constrained input is a normal outcome,
// not a fault.
var ErrInfeasibleItinerary = errors.New("no feasible itinerary for the given constraints")

// Problem is one solve request: the origin anchor first, the final anchor
// last, and unordered intermediate stops in between, each visited exactly
// once in whatever order minimizes total price. Read-only for the duration
// of the solve.
type Problem struct {
	Destinations []domain.Destination
}

// NewProblem assembles a Problem and stamps the shared day-gap restrictions
// into every destination's constraints.
func NewProblem(
	origin domain.Destination,
	intermediates []domain.Destination,
	final domain.Destination,
	restrictions *domain.DateRestrictions,
) Problem {
	all := make([]domain.Destination, 0, len(intermediates)+2)
	all = append(all, origin)
	all = append(all, intermediates...)
	all = append(all, final)

	for i := range all {
		all[i].Constraints.Restrictions = restrictions
	}

	return Problem{Destinations: all}
}

// flightNode is a search-graph vertex: the flight it represents, that leg's
// price, the cumulative price from the origin anchor, and the parent link
// forming an upward-only ancestor chain. Nodes are immutable once created;
// every node carries a concrete price by construction.
type flightNode struct {
	flight domain.Flight
	price  float64
	total  float64
	parent *flightNode

	// stay is the destination entry whose constraints govern the onward
	// leg from this node.
	stay *domain.Destination
}

// frontier is a min-heap of not-yet-expanded nodes ordered by cumulative
// price, so Pop always yields the cheapest partial itinerary.
type frontier []*flightNode

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].total < f[j].total }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)        { *f = append(*f, x.(*flightNode)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return node
}

// Solve runs a uniform-cost search over the lazily materialized flight
// graph and returns the cheapest itinerary from the origin anchor to the
// final anchor that visits every intermediate destination exactly once
// within its date windows.
//
// Prices are non-negative, so cumulative price is monotonically
// non-decreasing along any path and the first pop of the final anchor is
// optimal. Expansion order affects only the number of nodes explored, never
// the returned price.
func Solve(
	ctx context.Context,
	problem Problem,
	provider ports.PriceProvider,
	stats *SolverStats,
) ([]domain.FlightPrice, error) {
	if len(problem.Destinations) < 2 {
		return nil, errors.New("solve: problem needs an origin and a final destination")
	}
	for i, d := range problem.Destinations {
		if d.IATA == "" {
			return nil, fmt.Errorf("solve: destination %d has an empty IATA code", i)
		}
	}

	origin := &problem.Destinations[0]
	final := &problem.Destinations[len(problem.Destinations)-1]
	intermediates := problem.Destinations[1 : len(problem.Destinations)-1]

	// Sentinel seed: a zero-cost placeholder "flight" ending at the origin
	// anchor. It is never part of the returned itinerary.
	main := &frontier{}
	heap.Push(main, &flightNode{
		flight: domain.Flight{Destination: origin.IATA},
		stay:   origin,
	})

	for main.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("solve: %w", err)
		}

		node := heap.Pop(main).(*flightNode)

		// Goal: reached the final anchor via at least one real leg.
		if node.flight.Destination == final.IATA && node.parent != nil {
			return backtrace(node), nil
		}

		if err := expand(ctx, node, intermediates, final, provider, stats, main); err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("solve: %w", ErrInfeasibleItinerary)
}

// expand pushes every feasible onward flight from node into the frontier.
func expand(
	ctx context.Context,
	node *flightNode,
	intermediates []domain.Destination,
	final *domain.Destination,
	provider ports.PriceProvider,
	stats *SolverStats,
	main *frontier,
) error {
	var prevArrival *domain.Date
	if node.parent != nil {
		d := node.flight.Date
		prevArrival = &d
	}
	departure := node.stay.Constraints.Departure

	// Remaining candidates: intermediates not yet on the ancestor chain.
	// Once all intermediates are visited, the only legal hop is the final
	// anchor. The linear chain walk is fine for the short itineraries this
	// solver targets; a per-node visited set would be needed beyond that.
	candidates := make([]*domain.Destination, 0, len(intermediates))
	for i := range intermediates {
		if !onChain(node, intermediates[i].IATA) {
			candidates = append(candidates, &intermediates[i])
		}
	}
	if len(candidates) == 0 {
		candidates = append(candidates, final)
	}

	for _, cand := range candidates {
		dates := cand.Constraints.CandidateArrivalDates(prevArrival, departure)
		if len(dates) == 0 {
			continue
		}

		flights := make([]domain.Flight, 0, len(dates))
		for _, date := range dates {
			flights = append(flights, domain.Flight{
				Origin:      node.flight.Destination,
				Destination: cand.IATA,
				Date:        date,
			})
		}

		quotes, err := priceFlights(ctx, provider, stats, flights)
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}

		for i, flight := range flights {
			heap.Push(main, &flightNode{
				flight: flight,
				price:  quotes[i].MinPrice,
				total:  node.total + quotes[i].MinPrice,
				parent: node,
				stay:   cand,
			})
		}
	}

	return nil
}

// priceFlights prefers a one-shot batch request when the provider supports
// it, falling back to leg-by-leg pricing.
func priceFlights(
	ctx context.Context,
	provider ports.PriceProvider,
	stats *SolverStats,
	flights []domain.Flight,
) ([]domain.Quote, error) {
	stats.AddPriceQueries(len(flights))

	if batch, ok := provider.(ports.BatchPriceProvider); ok {
		quotes, err := batch.GetPrices(ctx, flights)
		if err != nil {
			return nil, fmt.Errorf("price flights: %w", err)
		}
		if len(quotes) != len(flights) {
			return nil, fmt.Errorf("price flights: got %d quotes for %d flights", len(quotes), len(flights))
		}
		return quotes, nil
	}

	quotes := make([]domain.Quote, 0, len(flights))
	for _, f := range flights {
		q, err := provider.GetPrice(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("price %s: %w", f, err)
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

// onChain reports whether code appears as a destination anywhere on the
// node's ancestor chain, the node itself included.
func onChain(node *flightNode, code string) bool {
	for cur := node; cur != nil; cur = cur.parent {
		if cur.flight.Destination == code {
			return true
		}
	}
	return false
}

// backtrace walks parent links from the goal node to the sentinel and
// returns the itinerary in travel order, sentinel excluded.
func backtrace(goal *flightNode) []domain.FlightPrice {
	var legs []domain.FlightPrice
	for cur := goal; cur.parent != nil; cur = cur.parent {
		legs = append(legs, domain.FlightPrice{Flight: cur.flight, Price: cur.price})
	}

	for i, j := 0, len(legs)-1; i < j; i, j = i+1, j-1 {
		legs[i], legs[j] = legs[j], legs[i]
	}
	return legs
}
