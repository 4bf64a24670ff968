package domain

// Accepted ranges for vehicle parameters. Values outside these bounds
// are rejected before any estimation runs.
const (
	MinBatteryCapacityKWh = 10.0
	MaxBatteryCapacityKWh = 200.0
	MinChargePercent      = 1.0
	MaxChargePercent      = 100.0
	MinEfficiencyMiPerKWh = 1.0
	MaxEfficiencyMiPerKWh = 10.0
)

// Represents the electric vehicle state supplied by the caller.
// All three values are required for an estimate; Validate enforces
// the accepted ranges and reports the first violation found.
type VehicleParameters struct {
	BatteryCapacityKWh   float64
	CurrentChargePercent float64
	EfficiencyMiPerKWh   float64
}

// Check each parameter against its accepted range, in declaration
// order, returning a *ParameterRangeError for the first offender.
func (v VehicleParameters) Validate() error {
	if v.BatteryCapacityKWh < MinBatteryCapacityKWh || v.BatteryCapacityKWh > MaxBatteryCapacityKWh {
		return &ParameterRangeError{
			Parameter: "battery capacity (kWh)",
			Value:     v.BatteryCapacityKWh,
			Min:       MinBatteryCapacityKWh,
			Max:       MaxBatteryCapacityKWh,
		}
	}
	if v.CurrentChargePercent < MinChargePercent || v.CurrentChargePercent > MaxChargePercent {
		return &ParameterRangeError{
			Parameter: "current charge (%)",
			Value:     v.CurrentChargePercent,
			Min:       MinChargePercent,
			Max:       MaxChargePercent,
		}
	}
	if v.EfficiencyMiPerKWh < MinEfficiencyMiPerKWh || v.EfficiencyMiPerKWh > MaxEfficiencyMiPerKWh {
		return &ParameterRangeError{
			Parameter: "efficiency (mi/kWh)",
			Value:     v.EfficiencyMiPerKWh,
			Min:       MinEfficiencyMiPerKWh,
			Max:       MaxEfficiencyMiPerKWh,
		}
	}
	return nil
}
