package api

import (
	"net/http"

	"flight-route-service/internal/api/handlers"
	"flight-route-service/internal/ports"

	"go.uber.org/zap"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(provider ports.PriceProvider, statsEnabled bool, log *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{
		Provider:     provider,
		StatsEnabled: statsEnabled,
		Log:          log,
	}
	priceHandler := &handlers.PriceHandler{
		Provider: provider,
		Log:      log,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/routes", routeHandler.Solve)
	mux.HandleFunc("/prices", priceHandler.Price)

	return requestIDMiddleware(loggingMiddleware(log, mux))
}
