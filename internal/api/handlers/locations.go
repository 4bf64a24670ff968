package handlers

import (
	"log"
	"net/http"

	"ev-range-service/internal/api/dto"
	"ev-range-service/internal/domain"
	"ev-range-service/internal/ports"
)

// LocationHandler exposes read-only location reference data.
type LocationHandler struct {
	Directory ports.LocationDirectory
}

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Directory.Profiles(r.Context())
	if err != nil {
		log.Printf("list locations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListLocationsResponse{
		Locations: make([]dto.LocationResponse, 0, len(profiles)),
	}
	for _, p := range profiles {
		res.Locations = append(res.Locations, dto.LocationResponse{
			Name:          p.Name,
			TerrainFactor: p.TerrainFactor,
			TrafficFactor: p.TrafficFactor,
			TerrainLabel:  domain.TerrainLabelFor(p.TerrainFactor),
			TrafficLabel:  domain.TrafficLabelFor(p.TrafficFactor),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
