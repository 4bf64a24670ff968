package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"ev-range-service/internal/adapters/directory"
	"ev-range-service/internal/domain"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestResolveRouteKnownPair(t *testing.T) {
	dir := directory.NewBuiltinDirectory()

	route, err := ResolveRoute(context.Background(), dir, "New York", "Boston")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if route.DistanceMiles != 215 {
		t.Errorf("distance = %v, want 215", route.DistanceMiles)
	}
	if !approxEqual(route.TerrainFactor, 1.0) {
		t.Errorf("terrain factor = %v, want 1.0", route.TerrainFactor)
	}
	if !approxEqual(route.TrafficFactor, 1.225) {
		t.Errorf("traffic factor = %v, want 1.225", route.TrafficFactor)
	}
	if route.TerrainLabel != "Flat" {
		t.Errorf("terrain label = %q, want %q", route.TerrainLabel, "Flat")
	}
	if route.TrafficLabel != "Moderate" {
		t.Errorf("traffic label = %q, want %q", route.TrafficLabel, "Moderate")
	}
	if route.EstimatedTime != "4h 3m" {
		t.Errorf("estimated time = %q, want %q", route.EstimatedTime, "4h 3m")
	}
}

func TestResolveRouteSymmetry(t *testing.T) {
	dir := directory.NewBuiltinDirectory()
	ctx := context.Background()

	routes, err := dir.Routes(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// every curated pair resolves to its tabulated distance in both
	// directions, and the full result is order-independent
	for _, known := range routes {
		forward, err := ResolveRoute(ctx, dir, known.Origin, known.Destination)
		if err != nil {
			t.Fatalf("resolve %q -> %q: %v", known.Origin, known.Destination, err)
		}
		backward, err := ResolveRoute(ctx, dir, known.Destination, known.Origin)
		if err != nil {
			t.Fatalf("resolve %q -> %q: %v", known.Destination, known.Origin, err)
		}

		if forward.DistanceMiles != known.DistanceMiles {
			t.Errorf("%q -> %q: distance = %v, want %v",
				known.Origin, known.Destination, forward.DistanceMiles, known.DistanceMiles)
		}
		if forward != backward {
			t.Errorf("%q <-> %q: asymmetric results:\n forward: %+v\nbackward: %+v",
				known.Origin, known.Destination, forward, backward)
		}
	}
}

func TestResolveRouteMissingInput(t *testing.T) {
	dir := directory.NewBuiltinDirectory()
	ctx := context.Background()

	cases := []struct {
		name  string
		start string
		end   string
	}{
		{"empty start", "", "Boston"},
		{"empty end", "Boston", ""},
		{"whitespace start", "   ", "Boston"},
		{"both empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveRoute(ctx, dir, tc.start, tc.end)
			if !errors.Is(err, domain.ErrMissingInput) {
				t.Errorf("got %v, want ErrMissingInput", err)
			}
		})
	}
}

func TestResolveRouteUnknownLocations(t *testing.T) {
	dir := directory.NewBuiltinDirectory()

	_, err := ResolveRoute(context.Background(), dir, "Zzyzx", "Qqtown")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var unknown *domain.UnknownLocationError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownLocationError, got %T", err)
	}
	if unknown.Start != "Zzyzx" || unknown.End != "Qqtown" {
		t.Errorf("error echoes %q/%q, want Zzyzx/Qqtown", unknown.Start, unknown.End)
	}

	// guidance names real cities from the head of the table
	want := []string{"new york", "boston", "philadelphia"}
	if len(unknown.Examples) != len(want) {
		t.Fatalf("examples = %v, want %v", unknown.Examples, want)
	}
	for i := range want {
		if unknown.Examples[i] != want[i] {
			t.Errorf("examples[%d] = %q, want %q", i, unknown.Examples[i], want[i])
		}
	}
}

func TestResolveRouteLooseMatching(t *testing.T) {
	dir := directory.NewBuiltinDirectory()
	ctx := context.Background()

	// input containing the key
	route, err := ResolveRoute(ctx, dir, "New York City", "Boston")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if route.DistanceMiles != 215 {
		t.Errorf("input containing key: distance = %v, want 215", route.DistanceMiles)
	}

	// key containing the input
	route, err = ResolveRoute(ctx, dir, "vegas", "los angeles")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if route.DistanceMiles != 270 {
		t.Errorf("key containing input: distance = %v, want 270", route.DistanceMiles)
	}

	// case and surrounding whitespace are ignored
	route, err = ResolveRoute(ctx, dir, "  NEW YORK  ", "boston")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if route.DistanceMiles != 215 {
		t.Errorf("case-insensitive match: distance = %v, want 215", route.DistanceMiles)
	}
}

func TestResolveRouteFirstDeclaredWins(t *testing.T) {
	dir := directory.NewStaticDirectory(
		[]domain.LocationProfile{
			{Name: "springfield", TerrainFactor: 1.2, TrafficFactor: 1.2},
			{Name: "spring", TerrainFactor: 1.4, TrafficFactor: 1.0},
			{Name: "rivertown", TerrainFactor: 1.0, TrafficFactor: 1.0},
		},
		nil,
	)

	// "spring" fits both entries; declaration order picks springfield
	route, err := ResolveRoute(context.Background(), dir, "spring", "rivertown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !approxEqual(route.TerrainFactor, 1.1) {
		t.Errorf("terrain factor = %v, want 1.1 (springfield averaged with rivertown)", route.TerrainFactor)
	}
	if !approxEqual(route.TrafficFactor, 1.1) {
		t.Errorf("traffic factor = %v, want 1.1", route.TrafficFactor)
	}

	// no curated route: fallback over the matched keys
	// 150 + (len("springfield") + len("rivertown")) * 10
	if route.DistanceMiles != 350 {
		t.Errorf("distance = %v, want 350", route.DistanceMiles)
	}
}

func TestResolveRouteFallbackDistanceForUncuratedPair(t *testing.T) {
	dir := directory.NewBuiltinDirectory()

	// both cities are known but no curated route connects them
	route, err := ResolveRoute(context.Background(), dir, "Boston", "Miami")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 150 + (len("boston") + len("miami")) * 10
	if route.DistanceMiles != 260 {
		t.Errorf("distance = %v, want 260", route.DistanceMiles)
	}
}

func TestResolveRoutePartialMatch(t *testing.T) {
	dir := directory.NewBuiltinDirectory()
	ctx := context.Background()

	route, err := ResolveRoute(ctx, dir, "Boston", "Narnia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// unmatched side contributes neutral factors
	if !approxEqual(route.TerrainFactor, 1.0) {
		t.Errorf("terrain factor = %v, want 1.0", route.TerrainFactor)
	}
	if !approxEqual(route.TrafficFactor, 1.075) {
		t.Errorf("traffic factor = %v, want 1.075", route.TrafficFactor)
	}
	if route.TrafficLabel != "Light" {
		t.Errorf("traffic label = %q, want %q", route.TrafficLabel, "Light")
	}

	// 100 + (len("Boston") + len("Narnia")) * 5
	if route.DistanceMiles != 160 {
		t.Errorf("distance = %v, want 160", route.DistanceMiles)
	}

	// the fallback reads the arguments as given, untrimmed
	padded, err := ResolveRoute(ctx, dir, " Boston ", "Narnia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if padded.DistanceMiles != 170 {
		t.Errorf("padded input: distance = %v, want 170", padded.DistanceMiles)
	}
}

func TestResolveRouteEstimatedTime(t *testing.T) {
	dir := directory.NewBuiltinDirectory()
	ctx := context.Background()

	cases := []struct {
		start string
		end   string
		want  string
	}{
		{"new york", "boston", "4h 3m"},
		{"seattle", "portland", "3h 5m"},
		{"san francisco", "sacramento", "1h 35m"},
	}

	for _, tc := range cases {
		route, err := ResolveRoute(ctx, dir, tc.start, tc.end)
		if err != nil {
			t.Fatalf("resolve %q -> %q: %v", tc.start, tc.end, err)
		}
		if route.EstimatedTime != tc.want {
			t.Errorf("%q -> %q: estimated time = %q, want %q", tc.start, tc.end, route.EstimatedTime, tc.want)
		}
	}
}

func TestFormatTravelTime(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{0, "0h 0m"},
		{1.5, "1h 30m"},
		{4.0519230769, "4h 3m"},
		// minutes round independently of hours, with no rollover
		{2.999, "2h 60m"},
	}

	for _, tc := range cases {
		if got := formatTravelTime(tc.hours); got != tc.want {
			t.Errorf("formatTravelTime(%v) = %q, want %q", tc.hours, got, tc.want)
		}
	}
}
