package handlers

import (
	"net/http"
	"time"

	"ev-range-service/internal/api/dto"
	"ev-range-service/internal/domain"
	"ev-range-service/internal/ports"
	"ev-range-service/internal/services"
)

// EstimateHandler runs the full trip pipeline: validate the vehicle,
// resolve the city pair, estimate range over the resolved route.
type EstimateHandler struct {
	Directory    ports.LocationDirectory
	ResolveDelay time.Duration
}

func (h *EstimateHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req dto.EstimateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := waitBeforeResolve(r.Context(), h.ResolveDelay); err != nil {
		return
	}

	vehicle := domain.VehicleParameters{
		BatteryCapacityKWh:   req.Vehicle.BatteryCapacityKWh,
		CurrentChargePercent: req.Vehicle.CurrentChargePercent,
		EfficiencyMiPerKWh:   req.Vehicle.EfficiencyMiPerKWh,
	}

	route, est, err := services.EstimateTrip(r.Context(), h.Directory, req.Start, req.End, vehicle)
	if err != nil {
		writeResolveError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.TripResponse{
		Start:    req.Start,
		End:      req.End,
		Route:    toRouteResponse(route),
		Estimate: toEstimateResponse(est),
	})
}

func toEstimateResponse(est domain.RangeEstimationResult) dto.EstimateResponse {
	return dto.EstimateResponse{
		EstimatedRangeMiles:    round1(est.EstimatedRangeMiles),
		BatteryConsumedPercent: round1(est.BatteryConsumedPercent),
		ChargingStopsNeeded:    est.ChargingStopsNeeded,
		ArrivalChargePercent:   round1(est.ArrivalChargePercent),
	}
}
