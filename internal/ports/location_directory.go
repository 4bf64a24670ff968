package ports

import (
	"context"
	"ev-range-service/internal/domain"
)

// Port: a boundary for reading location reference data from a source.
// Implementations must preserve the declared ordering of profiles,
// since free-text matching takes the first profile that fits.
type LocationDirectory interface {
	// Return every location profile in declaration order.
	Profiles(ctx context.Context) ([]domain.LocationProfile, error)

	// Return the curated distance for a directed pair of profile keys.
	// The boolean reports whether the pair is present; callers wanting
	// the reverse direction ask for it explicitly.
	RouteDistance(ctx context.Context, from, to string) (float64, bool, error)

	// Return every curated route.
	Routes(ctx context.Context) ([]domain.KnownRoute, error)
}
