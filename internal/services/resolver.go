package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"ev-range-service/internal/domain"
	"ev-range-service/internal/ports"
)

// Baseline highway speed before the traffic factor slows it down.
const baseHighwaySpeedMph = 65.0

// Fallback distance coefficients for pairs without a curated route.
// Both scale with input length so longer names read as longer trips;
// the guess is stable but makes no claim to geographic accuracy.
const (
	matchedFallbackBaseMiles = 150
	matchedFallbackPerChar   = 10
	partialFallbackBaseMiles = 100
	partialFallbackPerChar   = 5
)

const unknownLocationExampleCount = 3

// Resolve a free-text city pair into route data.
//
// Matching is deliberately loose: each input is trimmed, lowercased
// and compared against the profile keys by substring in both
// directions, and the first profile in declaration order that fits
// wins. A trip resolves as long as at least one side matches; the
// unmatched side contributes neutral factors. Only a pair with no
// match on either side is rejected.
func ResolveRoute(
	ctx context.Context,
	dir ports.LocationDirectory,
	start string,
	end string,
) (domain.RouteData, error) {
	trimmedStart := strings.TrimSpace(start)
	trimmedEnd := strings.TrimSpace(end)
	if trimmedStart == "" || trimmedEnd == "" {
		return domain.RouteData{}, domain.ErrMissingInput
	}

	profiles, err := dir.Profiles(ctx)
	if err != nil {
		return domain.RouteData{}, fmt.Errorf("resolve route: list profiles: %w", err)
	}

	startProfile, startOK := matchProfile(profiles, strings.ToLower(trimmedStart))
	endProfile, endOK := matchProfile(profiles, strings.ToLower(trimmedEnd))

	if !startOK && !endOK {
		return domain.RouteData{}, &domain.UnknownLocationError{
			Start:    trimmedStart,
			End:      trimmedEnd,
			Examples: exampleNames(profiles, unknownLocationExampleCount),
		}
	}

	// An unmatched side contributes neutral driving conditions.
	startTerrain, startTraffic := 1.0, 1.0
	if startOK {
		startTerrain, startTraffic = startProfile.TerrainFactor, startProfile.TrafficFactor
	}
	endTerrain, endTraffic := 1.0, 1.0
	if endOK {
		endTerrain, endTraffic = endProfile.TerrainFactor, endProfile.TrafficFactor
	}

	terrain := (startTerrain + endTerrain) / 2
	traffic := (startTraffic + endTraffic) / 2

	var distance float64
	switch {
	case startOK && endOK:
		distance, err = lookupOrSynthesize(ctx, dir, startProfile.Name, endProfile.Name)
		if err != nil {
			return domain.RouteData{}, fmt.Errorf("resolve route: %w", err)
		}
	default:
		// One recognized side: no curated pair can exist, so guess
		// from the raw argument lengths as given by the caller.
		distance = float64(partialFallbackBaseMiles + (len(start)+len(end))*partialFallbackPerChar)
	}

	hours := distance / (baseHighwaySpeedMph / traffic)

	return domain.RouteData{
		DistanceMiles: distance,
		TerrainFactor: terrain,
		TrafficFactor: traffic,
		TerrainLabel:  domain.TerrainLabelFor(terrain),
		TrafficLabel:  domain.TrafficLabelFor(traffic),
		EstimatedTime: formatTravelTime(hours),
	}, nil
}

// Take the first profile whose key contains the input or is contained
// by it. Declaration order decides ties, so the caller-visible result
// is stable for a given table.
func matchProfile(profiles []domain.LocationProfile, input string) (domain.LocationProfile, bool) {
	for _, p := range profiles {
		if strings.Contains(input, p.Name) || strings.Contains(p.Name, input) {
			return p, true
		}
	}
	return domain.LocationProfile{}, false
}

func exampleNames(profiles []domain.LocationProfile, n int) []string {
	if len(profiles) < n {
		n = len(profiles)
	}
	out := make([]string, 0, n)
	for _, p := range profiles[:n] {
		out = append(out, p.Name)
	}
	return out
}

// Curated distance if the pair is on file in either direction,
// otherwise a length-derived fallback over the matched keys.
func lookupOrSynthesize(ctx context.Context, dir ports.LocationDirectory, startKey, endKey string) (float64, error) {
	miles, ok, err := dir.RouteDistance(ctx, startKey, endKey)
	if err != nil {
		return 0, fmt.Errorf("route distance %q -> %q: %w", startKey, endKey, err)
	}
	if ok {
		return miles, nil
	}

	miles, ok, err = dir.RouteDistance(ctx, endKey, startKey)
	if err != nil {
		return 0, fmt.Errorf("route distance %q -> %q: %w", endKey, startKey, err)
	}
	if ok {
		return miles, nil
	}

	return float64(matchedFallbackBaseMiles + (len(startKey)+len(endKey))*matchedFallbackPerChar), nil
}

// Render fractional hours as "3h 5m". Whole hours are floored and
// leftover minutes rounded independently, so a value just under a
// whole hour can render as "2h 60m" rather than rolling over.
func formatTravelTime(hours float64) string {
	wholeHours := math.Floor(hours)
	minutes := math.Round((hours - wholeHours) * 60)
	return fmt.Sprintf("%dh %dm", int(wholeHours), int(minutes))
}
