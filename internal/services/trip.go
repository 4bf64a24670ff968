package services

import (
	"context"
	"fmt"

	"ev-range-service/internal/domain"
	"ev-range-service/internal/ports"
)

// Resolve a trip and estimate the vehicle's range over it in one
// call. Vehicle parameters are checked first so an out-of-range value
// is reported even when the locations would not resolve.
func EstimateTrip(
	ctx context.Context,
	dir ports.LocationDirectory,
	start string,
	end string,
	vehicle domain.VehicleParameters,
) (domain.RouteData, domain.RangeEstimationResult, error) {
	if err := vehicle.Validate(); err != nil {
		return domain.RouteData{}, domain.RangeEstimationResult{}, fmt.Errorf("estimate trip: %w", err)
	}

	route, err := ResolveRoute(ctx, dir, start, end)
	if err != nil {
		return domain.RouteData{}, domain.RangeEstimationResult{}, fmt.Errorf("estimate trip: %w", err)
	}

	return route, EstimateRange(route, vehicle), nil
}
