package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"flight-route-service/internal/api/dto"
	"flight-route-service/internal/domain"
	"flight-route-service/internal/ports"

	"go.uber.org/zap"
)

// PriceHandler exposes a single-hop quote lookup.
type PriceHandler struct {
	Provider ports.PriceProvider
	Log      *zap.Logger
}

func (h *PriceHandler) Price(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PriceRequest

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

	origin := strings.ToUpper(strings.TrimSpace(req.Origin))
	destination := strings.ToUpper(strings.TrimSpace(req.Destination))
	if origin == "" || destination == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	flight := domain.Flight{Origin: origin, Destination: destination, Date: date}

	quote, err := h.Provider.GetPrice(r.Context(), flight)
	if err != nil {
		h.Log.Error("price lookup failed", zap.String("flight", flight.String()), zap.Error(err))
		writeError(w, r, http.StatusBadGateway, "pricing service unavailable")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PriceResponse{
		Origin:      origin,
		Destination: destination,
		Date:        date.String(),
		MinPrice:    quote.MinPrice,
		Direct:      quote.Direct,
	})
}
