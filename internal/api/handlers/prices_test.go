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

func TestPriceHandlerReturnsQuote(t *testing.T) {
	h := &PriceHandler{
		Provider: pricing.NewFixtureProvider([]pricing.FixtureQuote{
			{From: "JFK", To: "LIS", Date: domain.NewDate(2024, 5, 10), Price: 420, Direct: true},
		}),
		Log: zap.NewNop(),
	}

	body := `{"origin": "jfk", "destination": "lis", "date": "2024-05-10"}`
	req := httptest.NewRequest(http.MethodPost, "/prices", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Price(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var res dto.PriceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.MinPrice != 420 || !res.Direct {
		t.Errorf("unexpected quote %+v", res)
	}
	if res.Origin != "JFK" || res.Destination != "LIS" {
		t.Errorf("codes not normalized: %+v", res)
	}
}

func TestPriceHandlerUpstreamFailureIs502(t *testing.T) {
	h := &PriceHandler{
		Provider: pricing.NewFixtureProvider(nil),
		Log:      zap.NewNop(),
	}

	body := `{"origin": "JFK", "destination": "LIS", "date": "2024-05-10"}`
	req := httptest.NewRequest(http.MethodPost, "/prices", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Price(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadGateway)
	}
}

func TestPriceHandlerRejectsBadDate(t *testing.T) {
	h := &PriceHandler{Provider: pricing.NewFixtureProvider(nil), Log: zap.NewNop()}

	body := `{"origin": "JFK", "destination": "LIS", "date": "10 May 2024"}`
	req := httptest.NewRequest(http.MethodPost, "/prices", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Price(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
