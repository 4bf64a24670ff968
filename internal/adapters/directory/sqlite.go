package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ev-range-service/internal/cache"
	"ev-range-service/internal/domain"
)

const profilesCacheKey = "profiles"

// Profiles change only on reseed, so a short memo keeps the hot
// resolve path off the database.
const profilesCacheTTL = time.Minute

// SQLite backed location directory. Profile rows carry an explicit
// position column because match precedence follows declaration
// order, not alphabetical order.
type SqliteDirectory struct {
	DB       *sql.DB
	profiles *cache.Cache[[]domain.LocationProfile]
}

func NewSqliteDirectory(db *sql.DB) *SqliteDirectory {
	return &SqliteDirectory{
		DB:       db,
		profiles: cache.New[[]domain.LocationProfile](profilesCacheTTL),
	}
}

func (d *SqliteDirectory) Profiles(ctx context.Context) ([]domain.LocationProfile, error) {
	if d.DB == nil {
		return nil, errors.New("location directory: db is nil")
	}

	if cached, ok := d.profiles.Get(profilesCacheKey); ok {
		return cached, nil
	}

	rows, err := d.DB.QueryContext(ctx, `
	SELECT name, terrain_factor, traffic_factor
	FROM location_profiles
	ORDER BY position;
	`)
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

func (d *SqliteDirectory) RouteDistance(ctx context.Context, from, to string) (float64, bool, error) {
	if d.DB == nil {
		return 0, false, errors.New("location directory: db is nil")
	}

	var miles float64
	err := d.DB.QueryRowContext(ctx, `
	SELECT distance_miles
	FROM known_routes
	WHERE origin = ? AND destination = ?;
	`, from, to).Scan(&miles)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("route distance: query known_routes table: %w", err)
	}

	return miles, true, nil
}

func (d *SqliteDirectory) Routes(ctx context.Context) ([]domain.KnownRoute, error) {
	if d.DB == nil {
		return nil, errors.New("location directory: db is nil")
	}

	rows, err := d.DB.QueryContext(ctx, `
	SELECT origin, destination, distance_miles
	FROM known_routes
	ORDER BY origin, destination;
	`)
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

// Initialize the SQLite directory schema.
func InitSqliteSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createProfilesQuery := `
	CREATE TABLE IF NOT EXISTS location_profiles (
		position INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		terrain_factor REAL NOT NULL,
		traffic_factor REAL NOT NULL
	);
	`

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS known_routes (
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        distance_miles REAL NOT NULL,
        PRIMARY KEY (origin, destination)
    );
	`

	statements := []string{
		createProfilesQuery,
		createRoutesQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the SQLite directory from a JSON seed file. Existing rows
// are replaced so reseeding is idempotent.
func SeedSqliteFromJSON(db *sql.DB, jsonPath string) error {
	if db == nil {
		return errors.New("seed locations: DB is nil")
	}

	profiles, routes, err := LoadSeedFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed locations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	profileStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO location_profiles (
		position,
		name,
		terrain_factor,
		traffic_factor
	)
	VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed locations: prepare profile insert: %w", err)
	}
	defer profileStmt.Close()

	for i, p := range profiles {
		if _, err := profileStmt.Exec(i+1, p.Name, p.TerrainFactor, p.TrafficFactor); err != nil {
			return fmt.Errorf("seed locations: insert profile %q: %w", p.Name, err)
		}
	}

	routeStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO known_routes (
		origin,
		destination,
		distance_miles
	)
	VALUES (?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed locations: prepare route insert: %w", err)
	}
	defer routeStmt.Close()

	for _, r := range routes {
		if _, err := routeStmt.Exec(r.Origin, r.Destination, r.DistanceMiles); err != nil {
			return fmt.Errorf("seed locations: insert route %q -> %q: %w", r.Origin, r.Destination, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed locations: commit tx: %w", err)
	}

	return nil
}
