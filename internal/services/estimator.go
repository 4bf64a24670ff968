package services

import (
	"math"

	"ev-range-service/internal/domain"
)

// Drivers are never planned below a 10% reserve; each charging stop
// is assumed to put back 70 points of charge.
const (
	reserveFloorPercent  = 10.0
	chargePerStopPercent = 70.0
)

// Estimate whether the vehicle makes the trip and in what state.
//
// Terrain and traffic factors degrade the nominal efficiency
// multiplicatively, which shrinks both the achievable range and the
// charge left on arrival. Charging stops are counted against the
// unclamped arrival charge, so a deeply negative deficit demands
// several stops even though the reported arrival charge bottoms out
// at the reserve floor. The function is pure: equal inputs produce
// identical results.
func EstimateRange(route domain.RouteData, vehicle domain.VehicleParameters) domain.RangeEstimationResult {
	availableEnergy := vehicle.BatteryCapacityKWh * (vehicle.CurrentChargePercent / 100)
	adjustedEfficiency := vehicle.EfficiencyMiPerKWh / (route.TerrainFactor * route.TrafficFactor)

	estimatedRange := availableEnergy * adjustedEfficiency
	energyRequired := route.DistanceMiles / adjustedEfficiency
	consumedPercent := (energyRequired / vehicle.BatteryCapacityKWh) * 100
	rawArrival := vehicle.CurrentChargePercent - consumedPercent

	stops := 0
	if rawArrival < reserveFloorPercent {
		stops = int(math.Ceil((reserveFloorPercent - rawArrival) / chargePerStopPercent))
	}

	arrival := math.Max(rawArrival, reserveFloorPercent)

	return domain.RangeEstimationResult{
		EstimatedRangeMiles:    estimatedRange,
		BatteryConsumedPercent: consumedPercent,
		ChargingStopsNeeded:    stops,
		ArrivalChargePercent:   arrival,
	}
}
