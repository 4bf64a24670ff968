package directory

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestSqlite(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// Seed document carrying the compiled-in tables, so the database
// round trip can be compared against the builtin directory.
func builtinSeedPath(t *testing.T) string {
	t.Helper()

	var seed SeedFile
	for _, p := range builtinProfiles {
		seed.Locations = append(seed.Locations, LocationSeed{
			Name:          p.Name,
			TerrainFactor: p.TerrainFactor,
			TrafficFactor: p.TrafficFactor,
		})
	}
	for _, r := range builtinRoutes {
		seed.Routes = append(seed.Routes, RouteSeed{
			Origin:        r.Origin,
			Destination:   r.Destination,
			DistanceMiles: r.DistanceMiles,
		})
	}

	bytes, err := json.Marshal(seed)
	if err != nil {
		t.Fatalf("marshal seed: %v", err)
	}
	return writeSeed(t, string(bytes))
}

func TestSqliteDirectoryMatchesBuiltin(t *testing.T) {
	conn := openTestSqlite(t)
	ctx := context.Background()

	if err := InitSqliteSchema(conn); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	if err := SeedSqliteFromJSON(conn, builtinSeedPath(t)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	dir := NewSqliteDirectory(conn)
	static := NewBuiltinDirectory()

	// externalizing the tables must not reorder profiles: match
	// precedence follows the position column, not name order
	got, err := dir.Profiles(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, err := static.Profiles(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d profiles, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("profile %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	miles, ok, err := dir.RouteDistance(ctx, "new york", "boston")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || miles != 215 {
		t.Errorf("new york -> boston = %v (present=%v), want 215", miles, ok)
	}

	// only the declared direction is stored
	_, ok, err = dir.RouteDistance(ctx, "boston", "new york")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("reverse ordering should not be stored")
	}

	routes, err := dir.Routes(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(routes) != len(builtinRoutes) {
		t.Errorf("got %d routes, want %d", len(routes), len(builtinRoutes))
	}
}

func TestSqliteDirectoryReseedIsIdempotent(t *testing.T) {
	conn := openTestSqlite(t)
	ctx := context.Background()

	if err := InitSqliteSchema(conn); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	seedPath := builtinSeedPath(t)
	if err := SeedSqliteFromJSON(conn, seedPath); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := SeedSqliteFromJSON(conn, seedPath); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	profiles, err := NewSqliteDirectory(conn).Profiles(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles) != len(builtinProfiles) {
		t.Errorf("got %d profiles after reseed, want %d", len(profiles), len(builtinProfiles))
	}
	if profiles[0].Name != "new york" {
		t.Errorf("first profile = %q, want %q", profiles[0].Name, "new york")
	}
}
