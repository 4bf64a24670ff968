package directory

import (
	"context"
	"ev-range-service/internal/domain"
)

// In-memory location directory backed by fixed tables. The zero
// value is not usable; construct via NewStaticDirectory or
// NewBuiltinDirectory. Lookups never fail, so this is also the
// injection point for tests that need a controlled data set.
type StaticDirectory struct {
	profiles []domain.LocationProfile
	routes   []domain.KnownRoute
	dist     map[string]float64
}

// Build a directory from explicit tables. The profile slice order is
// preserved; it defines match precedence for free-text resolution.
func NewStaticDirectory(profiles []domain.LocationProfile, routes []domain.KnownRoute) *StaticDirectory {
	d := &StaticDirectory{
		profiles: make([]domain.LocationProfile, len(profiles)),
		routes:   make([]domain.KnownRoute, len(routes)),
		dist:     make(map[string]float64, len(routes)),
	}
	copy(d.profiles, profiles)
	copy(d.routes, routes)
	for _, r := range routes {
		d.dist[r.Origin+"|"+r.Destination] = r.DistanceMiles
	}
	return d
}

// Build a directory over the compiled-in city and route tables.
func NewBuiltinDirectory() *StaticDirectory {
	return NewStaticDirectory(builtinProfiles, builtinRoutes)
}

func (d *StaticDirectory) Profiles(ctx context.Context) ([]domain.LocationProfile, error) {
	out := make([]domain.LocationProfile, len(d.profiles))
	copy(out, d.profiles)
	return out, nil
}

// Only the declared direction is stored; callers wanting the reverse
// ordering ask for it explicitly.
func (d *StaticDirectory) RouteDistance(ctx context.Context, from, to string) (float64, bool, error) {
	miles, ok := d.dist[from+"|"+to]
	return miles, ok, nil
}

func (d *StaticDirectory) Routes(ctx context.Context) ([]domain.KnownRoute, error) {
	out := make([]domain.KnownRoute, len(d.routes))
	copy(out, d.routes)
	return out, nil
}
