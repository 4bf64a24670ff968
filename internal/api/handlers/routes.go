package handlers

import (
	"log"
	"net/http"
	"time"

	"ev-range-service/internal/api/dto"
	"ev-range-service/internal/domain"
	"ev-range-service/internal/ports"
	"ev-range-service/internal/services"
)

// RouteHandler lists curated routes and resolves free-text trips.
type RouteHandler struct {
	Directory    ports.LocationDirectory
	ResolveDelay time.Duration
}

func (h *RouteHandler) List(w http.ResponseWriter, r *http.Request) {
	routes, err := h.Directory.Routes(r.Context())
	if err != nil {
		log.Printf("list routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListRoutesResponse{
		Routes: make([]dto.KnownRouteResponse, 0, len(routes)),
	}
	for _, route := range routes {
		res.Routes = append(res.Routes, dto.KnownRouteResponse{
			Origin:        route.Origin,
			Destination:   route.Destination,
			DistanceMiles: route.DistanceMiles,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Resolve turns a free-text city pair into route data without
// running a range estimate.
func (h *RouteHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req dto.ResolveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := waitBeforeResolve(r.Context(), h.ResolveDelay); err != nil {
		return
	}

	route, err := services.ResolveRoute(r.Context(), h.Directory, req.Start, req.End)
	if err != nil {
		writeResolveError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ResolveResponse{
		Start: req.Start,
		End:   req.End,
		Route: toRouteResponse(route),
	})
}

func toRouteResponse(route domain.RouteData) dto.RouteResponse {
	return dto.RouteResponse{
		DistanceMiles: round1(route.DistanceMiles),
		TerrainFactor: round4(route.TerrainFactor),
		TrafficFactor: round4(route.TrafficFactor),
		TerrainLabel:  route.TerrainLabel,
		TrafficLabel:  route.TrafficLabel,
		EstimatedTime: route.EstimatedTime,
	}
}
