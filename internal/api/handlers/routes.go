package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"flight-route-service/internal/api/dto"
	"flight-route-service/internal/domain"
	"flight-route-service/internal/ports"
	"flight-route-service/internal/services"

	"go.uber.org/zap"
)

type RouteHandler struct {
	Provider     ports.PriceProvider
	StatsEnabled bool
	Log          *zap.Logger
}

// Solve translates a route request into a solver problem, runs the search
// and renders the priced itinerary. All algorithmic work happens in the
// services package; this handler only adapts shapes.
func (h *RouteHandler) Solve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	origin, err := toDestination(req.Origin)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("origin: %v", err))
		return
	}
	final, err := toDestination(req.Final)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("final: %v", err))
		return
	}

	intermediates := make([]domain.Destination, 0, len(req.Destinations))
	for i, stop := range req.Destinations {
		d, err := toDestination(stop)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("destinations[%d]: %v", i, err))
			return
		}
		intermediates = append(intermediates, d)
	}

	restrictions, err := toRestrictions(req.Restrictions)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("restrictions: %v", err))
		return
	}

	problem := services.NewProblem(origin, intermediates, final, restrictions)
	stats := services.NewSolverStats(h.StatsEnabled)

	legs, err := services.Solve(r.Context(), problem, h.Provider, stats)
	if err != nil {
		if errors.Is(err, services.ErrInfeasibleItinerary) {
			writeError(w, r, http.StatusUnprocessableEntity, "no feasible itinerary for the given constraints")
			return
		}

		h.Log.Error("solve failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.RouteResponse{
		Legs:         make([]dto.RouteLegResponse, 0, len(legs)),
		PriceQueries: stats.PriceQueries(),
	}
	for _, leg := range legs {
		res.Legs = append(res.Legs, dto.RouteLegResponse{
			Origin:      leg.Flight.Origin,
			Destination: leg.Flight.Destination,
			Date:        leg.Flight.Date.String(),
			Price:       leg.Price,
		})
		res.TotalPrice += leg.Price
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toDestination(stop dto.RouteStopRequest) (domain.Destination, error) {
	iata := strings.ToUpper(strings.TrimSpace(stop.IATA))
	if iata == "" {
		return domain.Destination{}, errors.New("iata is required")
	}

	arrival, err := toDateRange(stop.ArrivalWindow)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("arrival_window: %w", err)
	}
	departure, err := toDateRange(stop.DepartureWindow)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("departure_window: %w", err)
	}

	return domain.Destination{
		IATA: iata,
		Constraints: domain.DateConstraints{
			Arrival:   arrival,
			Departure: departure,
		},
	}, nil
}

func toDateRange(w *dto.DateWindow) (domain.SingleDateRange, error) {
	if w == nil {
		return domain.Unconstrained(), nil
	}

	if w.Fixed != nil {
		if w.Start != nil || w.End != nil {
			return domain.SingleDateRange{}, errors.New("fixed cannot be combined with start/end")
		}
		d, err := domain.ParseDate(*w.Fixed)
		if err != nil {
			return domain.SingleDateRange{}, err
		}
		return domain.FixedDate(d), nil
	}

	if w.Start == nil || w.End == nil {
		return domain.SingleDateRange{}, errors.New("start and end must both be set")
	}

	start, err := domain.ParseDate(*w.Start)
	if err != nil {
		return domain.SingleDateRange{}, err
	}
	end, err := domain.ParseDate(*w.End)
	if err != nil {
		return domain.SingleDateRange{}, err
	}

	return domain.DateSpan(start, end)
}

func toRestrictions(r *dto.RestrictionsRequest) (*domain.DateRestrictions, error) {
	if r == nil {
		return nil, nil
	}

	if r.MinDays != nil && *r.MinDays < 0 {
		return nil, errors.New("min_days must be non-negative")
	}
	if r.MaxDays != nil && *r.MaxDays < 0 {
		return nil, errors.New("max_days must be non-negative")
	}
	if r.MinDays != nil && r.MaxDays != nil && *r.MinDays > *r.MaxDays {
		return nil, errors.New("min_days must not exceed max_days")
	}

	return &domain.DateRestrictions{MinDays: r.MinDays, MaxDays: r.MaxDays}, nil
}
