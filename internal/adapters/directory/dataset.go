package directory

import "ev-range-service/internal/domain"

// Compiled-in reference tables. Order matters: free-text resolution
// takes the first profile that matches, so broader or more common
// names sit ahead of narrower ones. Distances are curated highway
// miles, stored in one direction only.
var builtinProfiles = []domain.LocationProfile{
	{Name: "new york", TerrainFactor: 1.00, TrafficFactor: 1.30},
	{Name: "boston", TerrainFactor: 1.00, TrafficFactor: 1.15},
	{Name: "philadelphia", TerrainFactor: 1.00, TrafficFactor: 1.20},
	{Name: "washington", TerrainFactor: 1.05, TrafficFactor: 1.25},
	{Name: "atlanta", TerrainFactor: 1.05, TrafficFactor: 1.25},
	{Name: "miami", TerrainFactor: 1.00, TrafficFactor: 1.20},
	{Name: "orlando", TerrainFactor: 1.00, TrafficFactor: 1.15},
	{Name: "chicago", TerrainFactor: 1.00, TrafficFactor: 1.20},
	{Name: "detroit", TerrainFactor: 1.00, TrafficFactor: 1.15},
	{Name: "dallas", TerrainFactor: 1.00, TrafficFactor: 1.20},
	{Name: "austin", TerrainFactor: 1.05, TrafficFactor: 1.15},
	{Name: "houston", TerrainFactor: 1.00, TrafficFactor: 1.25},
	{Name: "denver", TerrainFactor: 1.40, TrafficFactor: 1.10},
	{Name: "salt lake city", TerrainFactor: 1.35, TrafficFactor: 1.05},
	{Name: "phoenix", TerrainFactor: 1.10, TrafficFactor: 1.10},
	{Name: "las vegas", TerrainFactor: 1.20, TrafficFactor: 1.05},
	{Name: "los angeles", TerrainFactor: 1.10, TrafficFactor: 1.30},
	{Name: "san francisco", TerrainFactor: 1.25, TrafficFactor: 1.25},
	{Name: "san diego", TerrainFactor: 1.10, TrafficFactor: 1.15},
	{Name: "sacramento", TerrainFactor: 1.05, TrafficFactor: 1.10},
	{Name: "seattle", TerrainFactor: 1.20, TrafficFactor: 1.20},
	{Name: "portland", TerrainFactor: 1.15, TrafficFactor: 1.10},
}

var builtinRoutes = []domain.KnownRoute{
	{Origin: "new york", Destination: "boston", DistanceMiles: 215},
	{Origin: "new york", Destination: "philadelphia", DistanceMiles: 97},
	{Origin: "new york", Destination: "washington", DistanceMiles: 225},
	{Origin: "boston", Destination: "philadelphia", DistanceMiles: 308},
	{Origin: "philadelphia", Destination: "washington", DistanceMiles: 140},
	{Origin: "washington", Destination: "atlanta", DistanceMiles: 640},
	{Origin: "atlanta", Destination: "miami", DistanceMiles: 662},
	{Origin: "atlanta", Destination: "orlando", DistanceMiles: 440},
	{Origin: "miami", Destination: "orlando", DistanceMiles: 236},
	{Origin: "chicago", Destination: "detroit", DistanceMiles: 283},
	{Origin: "chicago", Destination: "new york", DistanceMiles: 790},
	{Origin: "chicago", Destination: "denver", DistanceMiles: 1000},
	{Origin: "dallas", Destination: "austin", DistanceMiles: 195},
	{Origin: "dallas", Destination: "houston", DistanceMiles: 239},
	{Origin: "austin", Destination: "houston", DistanceMiles: 165},
	{Origin: "denver", Destination: "salt lake city", DistanceMiles: 520},
	{Origin: "phoenix", Destination: "las vegas", DistanceMiles: 297},
	{Origin: "phoenix", Destination: "los angeles", DistanceMiles: 373},
	{Origin: "las vegas", Destination: "los angeles", DistanceMiles: 270},
	{Origin: "las vegas", Destination: "salt lake city", DistanceMiles: 421},
	{Origin: "los angeles", Destination: "san francisco", DistanceMiles: 382},
	{Origin: "los angeles", Destination: "san diego", DistanceMiles: 120},
	{Origin: "san francisco", Destination: "sacramento", DistanceMiles: 88},
	{Origin: "seattle", Destination: "portland", DistanceMiles: 174},
}
