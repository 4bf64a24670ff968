package api

import (
	"net/http"
	"time"

	"ev-range-service/internal/api/handlers"
	"ev-range-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(dir ports.LocationDirectory, resolveDelay time.Duration) http.Handler {
	mux := http.NewServeMux()

	locationHandler := &handlers.LocationHandler{Directory: dir}
	routeHandler := &handlers.RouteHandler{Directory: dir, ResolveDelay: resolveDelay}
	estimateHandler := &handlers.EstimateHandler{Directory: dir, ResolveDelay: resolveDelay}

	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("GET /locations", locationHandler.List)
	mux.HandleFunc("GET /routes", routeHandler.List)
	mux.HandleFunc("POST /routes/resolve", routeHandler.Resolve)
	mux.HandleFunc("POST /estimates", estimateHandler.Estimate)

	return chain(mux,
		recoveryMiddleware,
		requestIDMiddleware,
		loggingMiddleware,
		corsMiddleware,
	)
}
