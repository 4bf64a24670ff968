package domain

// Bounds for the per-city factors carried by a LocationProfile.
// Terrain ranges from flat interstate (1.0) to sustained mountain
// grades (1.5); traffic from free-flowing (1.0) to dense urban (1.3).
const (
	MinTerrainFactor = 1.0
	MaxTerrainFactor = 1.5
	MinTrafficFactor = 1.0
	MaxTrafficFactor = 1.3
)

// Represents a known city and its driving-condition factors.
// The Name is a normalized lowercase key; free-text input is matched
// against it by substring in either direction. Profiles are reference
// data loaded once and never mutated after startup.
type LocationProfile struct {
	Name          string
	TerrainFactor float64
	TrafficFactor float64
}

// Represents a curated driving distance between two profile keys.
// Routes are stored in one direction only; lookups are expected to
// try both orderings.
type KnownRoute struct {
	Origin        string
	Destination   string
	DistanceMiles float64
}

// Human-readable classification of a terrain factor.
func TerrainLabelFor(factor float64) string {
	switch {
	case factor > 1.3:
		return "Mountainous"
	case factor > 1.1:
		return "Hilly"
	default:
		return "Flat"
	}
}

// Human-readable classification of a traffic factor.
func TrafficLabelFor(factor float64) string {
	switch {
	case factor > 1.25:
		return "Heavy"
	case factor > 1.1:
		return "Moderate"
	default:
		return "Light"
	}
}
