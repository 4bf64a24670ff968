package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ev-range-service/internal/cache"
	"ev-range-service/internal/domain"
	"ev-range-service/internal/platform/obs"
)

// SQLDirectory is a Postgres-backed location directory. It shares the
// schema shape of the SQLite variant; only placeholders and upsert
// syntax differ.
type SQLDirectory struct {
	DB       *sql.DB
	profiles *cache.Cache[[]domain.LocationProfile]
}

func NewSQLDirectory(db *sql.DB) *SQLDirectory {
	return &SQLDirectory{
		DB:       db,
		profiles: cache.New[[]domain.LocationProfile](profilesCacheTTL),
	}
}

func (d *SQLDirectory) Profiles(ctx context.Context) (_ []domain.LocationProfile, err error) {
	defer obs.Time(ctx, "directory.Profiles")(&err)

	if d.DB == nil {
		return nil, errors.New("location directory: db is nil")
	}

	if cached, ok := d.profiles.Get(profilesCacheKey); ok {
		return cached, nil
	}

	q := `
	SELECT name, terrain_factor, traffic_factor
    FROM location_profiles
    ORDER BY position;
	`

	rows, err := d.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list profiles: query location_profiles table: %w", err)
	}
	defer rows.Close()

	var out []domain.LocationProfile
	for rows.Next() {
		var p domain.LocationProfile
		if err := rows.Scan(&p.Name, &p.TerrainFactor, &p.TrafficFactor); err != nil {
			return nil, fmt.Errorf("list profiles: scan rows: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list profiles: row iteration: %w", err)
	}

	d.profiles.Set(profilesCacheKey, out)
	return out, nil
}

func (d *SQLDirectory) RouteDistance(ctx context.Context, from, to string) (_ float64, _ bool, err error) {
	defer obs.Time(ctx, "directory.RouteDistance")(&err)

	if d.DB == nil {
		return 0, false, errors.New("location directory: db is nil")
	}

	q := `
	SELECT distance_miles
    FROM known_routes
    WHERE origin = $1 AND destination = $2;
	`

	var miles float64
	err = d.DB.QueryRowContext(ctx, q, from, to).Scan(&miles)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("route distance: query known_routes table: %w", err)
	}

	return miles, true, nil
}

func (d *SQLDirectory) Routes(ctx context.Context) (_ []domain.KnownRoute, err error) {
	defer obs.Time(ctx, "directory.Routes")(&err)

	if d.DB == nil {
		return nil, errors.New("location directory: db is nil")
	}

	q := `
	SELECT origin, destination, distance_miles
    FROM known_routes
    ORDER BY origin, destination;
	`

	rows, err := d.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list routes: query known_routes table: %w", err)
	}
	defer rows.Close()

	var out []domain.KnownRoute
	for rows.Next() {
		var r domain.KnownRoute
		if err := rows.Scan(&r.Origin, &r.Destination, &r.DistanceMiles); err != nil {
			return nil, fmt.Errorf("list routes: scan rows: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: row iteration: %w", err)
	}

	return out, nil
}

// Initialize the Postgres directory schema.
func InitSQLSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createProfilesQuery := `
	CREATE TABLE IF NOT EXISTS location_profiles (
		position INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		terrain_factor DOUBLE PRECISION NOT NULL,
		traffic_factor DOUBLE PRECISION NOT NULL
	);
	`

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS known_routes (
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        distance_miles DOUBLE PRECISION NOT NULL,
        PRIMARY KEY (origin, destination)
    );
	`

	statements := []string{
		createProfilesQuery,
		createRoutesQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the Postgres directory from a JSON seed file.
func SeedSQLFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	if db == nil {
		return errors.New("seed locations: DB is nil")
	}

	profiles, routes, err := LoadSeedFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed locations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	profileStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO location_profiles (position, name, terrain_factor, traffic_factor)
    VALUES ($1, $2, $3, $4)
	ON CONFLICT (name) DO UPDATE
	SET position = EXCLUDED.position,
		terrain_factor = EXCLUDED.terrain_factor,
		traffic_factor = EXCLUDED.traffic_factor;
	`)
	if err != nil {
		return fmt.Errorf("seed locations: prepare profile insert: %w", err)
	}
	defer profileStmt.Close()

	for i, p := range profiles {
		if _, err := profileStmt.ExecContext(ctx, i+1, p.Name, p.TerrainFactor, p.TrafficFactor); err != nil {
			return fmt.Errorf("seed locations: insert profile %q: %w", p.Name, err)
		}
	}

	routeStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO known_routes (origin, destination, distance_miles)
    VALUES ($1, $2, $3)
	ON CONFLICT (origin, destination) DO UPDATE
	SET distance_miles = EXCLUDED.distance_miles;
	`)
	if err != nil {
		return fmt.Errorf("seed locations: prepare route insert: %w", err)
	}
	defer routeStmt.Close()

	for _, r := range routes {
		if _, err := routeStmt.ExecContext(ctx, r.Origin, r.Destination, r.DistanceMiles); err != nil {
			return fmt.Errorf("seed locations: insert route %q -> %q: %w", r.Origin, r.Destination, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed locations: commit tx: %w", err)
	}

	return nil
}
