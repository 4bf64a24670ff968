package directory

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"ev-range-service/internal/domain"
)

type LocationSeed struct {
	Name          string  `json:"name"`
	TerrainFactor float64 `json:"terrain_factor"`
	TrafficFactor float64 `json:"traffic_factor"`
}

type RouteSeed struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DistanceMiles float64 `json:"distance_miles"`
}

type SeedFile struct {
	Locations []LocationSeed `json:"locations"`
	Routes    []RouteSeed    `json:"routes"`
}

// Read and validate a seed file, returning domain tables in file
// order. Names are lowercased and trimmed so the stored keys match
// what free-text resolution expects.
func LoadSeedFile(path string) ([]domain.LocationProfile, []domain.KnownRoute, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load seed: read %q: %w", path, err)
	}

	var data SeedFile
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, nil, fmt.Errorf("load seed: parse json: %w", err)
	}

	if len(data.Locations) == 0 {
		return nil, nil, fmt.Errorf("load seed: no locations in %q", path)
	}

	seen := make(map[string]struct{}, len(data.Locations))
	profiles := make([]domain.LocationProfile, 0, len(data.Locations))
	for i, loc := range data.Locations {
		name := strings.ToLower(strings.TrimSpace(loc.Name))
		if name == "" {
			return nil, nil, fmt.Errorf("load seed: location at index %d: name cannot be empty", i+1)
		}
		if _, dup := seen[name]; dup {
			return nil, nil, fmt.Errorf("load seed: duplicate location %q at index %d", name, i+1)
		}
		seen[name] = struct{}{}

		if loc.TerrainFactor < domain.MinTerrainFactor || loc.TerrainFactor > domain.MaxTerrainFactor {
			return nil, nil, fmt.Errorf("load seed: location %q: terrain factor %g out of range [%g, %g]",
				name, loc.TerrainFactor, domain.MinTerrainFactor, domain.MaxTerrainFactor)
		}
		if loc.TrafficFactor < domain.MinTrafficFactor || loc.TrafficFactor > domain.MaxTrafficFactor {
			return nil, nil, fmt.Errorf("load seed: location %q: traffic factor %g out of range [%g, %g]",
				name, loc.TrafficFactor, domain.MinTrafficFactor, domain.MaxTrafficFactor)
		}

		profiles = append(profiles, domain.LocationProfile{
			Name:          name,
			TerrainFactor: loc.TerrainFactor,
			TrafficFactor: loc.TrafficFactor,
		})
	}

	routes := make([]domain.KnownRoute, 0, len(data.Routes))
	for i, r := range data.Routes {
		origin := strings.ToLower(strings.TrimSpace(r.Origin))
		dest := strings.ToLower(strings.TrimSpace(r.Destination))
		if origin == "" || dest == "" {
			return nil, nil, fmt.Errorf("load seed: route at index %d: origin and destination cannot be empty", i+1)
		}
		if _, ok := seen[origin]; !ok {
			return nil, nil, fmt.Errorf("load seed: route at index %d: unknown origin %q", i+1, origin)
		}
		if _, ok := seen[dest]; !ok {
			return nil, nil, fmt.Errorf("load seed: route at index %d: unknown destination %q", i+1, dest)
		}
		if r.DistanceMiles <= 0 {
			return nil, nil, fmt.Errorf("load seed: route %q -> %q: distance must be positive", origin, dest)
		}

		routes = append(routes, domain.KnownRoute{
			Origin:        origin,
			Destination:   dest,
			DistanceMiles: r.DistanceMiles,
		})
	}

	return profiles, routes, nil
}
