package domain

// Represents the outcome of a range estimate for one trip.
// EstimatedRangeMiles and BatteryConsumedPercent describe what the
// trip demands; ArrivalChargePercent is clamped to the 10% reserve
// floor while ChargingStopsNeeded reflects the unclamped deficit.
type RangeEstimationResult struct {
	EstimatedRangeMiles    float64
	BatteryConsumedPercent float64
	ChargingStopsNeeded    int
	ArrivalChargePercent   float64
}
