package dto

type VehicleParams struct {
	BatteryCapacityKWh   float64 `json:"battery_capacity_kwh"`
	CurrentChargePercent float64 `json:"current_charge_percent"`
	EfficiencyMiPerKWh   float64 `json:"efficiency_miles_per_kwh"`
}

type EstimateRequest struct {
	Start   string        `json:"start"`
	End     string        `json:"end"`
	Vehicle VehicleParams `json:"vehicle"`
}

type EstimateResponse struct {
	EstimatedRangeMiles    float64 `json:"estimated_range_miles"`
	BatteryConsumedPercent float64 `json:"battery_consumed_percent"`
	ChargingStopsNeeded    int     `json:"charging_stops_needed"`
	ArrivalChargePercent   float64 `json:"arrival_charge_percent"`
}

type TripResponse struct {
	Start    string           `json:"start"`
	End      string           `json:"end"`
	Route    RouteResponse    `json:"route"`
	Estimate EstimateResponse `json:"estimate"`
}
