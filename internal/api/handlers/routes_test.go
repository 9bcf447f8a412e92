package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"flight-route-service/internal/adapters/pricing"
	"flight-route-service/internal/api/dto"
	"flight-route-service/internal/domain"

	"go.uber.org/zap"
)

func newRouteHandler(quotes []pricing.FixtureQuote) *RouteHandler {
	return &RouteHandler{
		Provider:     pricing.NewFixtureProvider(quotes),
		StatsEnabled: true,
		Log:          zap.NewNop(),
	}
}

func postRoute(t *testing.T, h *RouteHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/routes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Solve(rec, req)
	return rec
}

func TestSolveHandlerReturnsCheapestItinerary(t *testing.T) {
	h := newRouteHandler([]pricing.FixtureQuote{
		{From: "JFK", To: "LIS", Date: domain.NewDate(2024, 5, 10), Price: 420, Direct: true},
		{From: "JFK", To: "LIS", Date: domain.NewDate(2024, 5, 11), Price: 310, Direct: false},
	})

	body := `{
		"origin": {"iata": "jfk", "departure_window": {"start": "2024-05-10", "end": "2024-05-11"}},
		"final": {"iata": "lis"}
	}`

	rec := postRoute(t, h, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var res dto.RouteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(res.Legs) != 1 {
		t.Fatalf("legs = %d, want 1", len(res.Legs))
	}
	leg := res.Legs[0]
	if leg.Origin != "JFK" || leg.Destination != "LIS" || leg.Date != "2024-05-11" {
		t.Errorf("unexpected leg %+v", leg)
	}
	if res.TotalPrice != 310 {
		t.Errorf("total price = %v, want 310", res.TotalPrice)
	}
	if res.PriceQueries != 2 {
		t.Errorf("price queries = %d, want 2", res.PriceQueries)
	}
}

func TestSolveHandlerInfeasibleIs422(t *testing.T) {
	h := newRouteHandler(nil)

	body := `{
		"origin": {"iata": "JFK", "departure_window": {"fixed": "2024-05-10"}},
		"final": {"iata": "LIS", "arrival_window": {"fixed": "2024-05-09"}}
	}`

	rec := postRoute(t, h, body)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestSolveHandlerRejectsBadRequests(t *testing.T) {
	h := newRouteHandler(nil)

	cases := []struct {
		name string
		body string
	}{
		{"invalid json", `{"origin": `},
		{"unknown field", `{"origin": {"iata": "JFK"}, "final": {"iata": "LIS"}, "bogus": 1}`},
		{"two objects", `{"origin": {"iata": "JFK"}, "final": {"iata": "LIS"}} {}`},
		{"missing iata", `{"origin": {"iata": "  "}, "final": {"iata": "LIS"}}`},
		{"fixed with span", `{"origin": {"iata": "JFK", "departure_window": {"fixed": "2024-05-10", "start": "2024-05-10", "end": "2024-05-12"}}, "final": {"iata": "LIS"}}`},
		{"half open span", `{"origin": {"iata": "JFK", "departure_window": {"start": "2024-05-10"}}, "final": {"iata": "LIS"}}`},
		{"bad date", `{"origin": {"iata": "JFK", "departure_window": {"fixed": "05/10/2024"}}, "final": {"iata": "LIS"}}`},
		{"negative min days", `{"origin": {"iata": "JFK"}, "final": {"iata": "LIS"}, "restrictions": {"min_days": -1}}`},
		{"min over max", `{"origin": {"iata": "JFK"}, "final": {"iata": "LIS"}, "restrictions": {"min_days": 5, "max_days": 2}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postRoute(t, h, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusBadRequest, rec.Body.String())
			}
		})
	}
}

func TestSolveHandlerMethodNotAllowed(t *testing.T) {
	h := newRouteHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/routes", nil)
	rec := httptest.NewRecorder()
	h.Solve(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
	if allow := rec.Header().Get("Allow"); allow != http.MethodPost {
		t.Errorf("Allow = %q, want %q", allow, http.MethodPost)
	}
}
