package domain

// Represents a resolved trip between two free-text locations.
// A RouteData is the output of route resolution and carries the
// distance plus the averaged driving-condition factors for the pair,
// along with display labels derived from them. It is immutable result
// data and contains no side effects.
type RouteData struct {
	DistanceMiles float64
	TerrainFactor float64
	TrafficFactor float64
	TerrainLabel  string
	TrafficLabel  string
	EstimatedTime string
}
