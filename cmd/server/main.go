package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"ev-range-service/internal/adapters/directory"
	"ev-range-service/internal/api"
	"ev-range-service/internal/config"
	"ev-range-service/internal/platform/db"
	"ev-range-service/internal/ports"
)

// main is the application composition root.
// It wires a concrete location directory behind the port and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	source := config.Get("DIRECTORY_SOURCE", "static")
	resolveDelay := config.GetDuration("RESOLVE_DELAY", 0)

	dir, closeDir, err := buildDirectory(source)
	if err != nil {
		log.Fatal(err)
	}
	defer closeDir()

	router := api.NewRouter(dir, resolveDelay)

	log.Printf("Server listening addr=:%s directory=%s", port, source)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// buildDirectory selects the location data source. SQLite gets its schema
// and seed applied on startup for local runs; Postgres is expected to be
// prepared ahead of time with the dbtool.
func buildDirectory(source string) (ports.LocationDirectory, func(), error) {
	switch source {
	case "static":
		return directory.NewBuiltinDirectory(), func() {}, nil

	case "sqlite":
		dbPath := config.Get("DB_PATH", "data/app.db")
		seedPath := config.Get("SEED_PATH", "data/seeds/locations.json")

		conn, err := openSqlite(dbPath)
		if err != nil {
			return nil, nil, err
		}
		if err := directory.InitSqliteSchema(conn); err != nil {
			conn.Close()
			return nil, nil, err
		}
		if err := directory.SeedSqliteFromJSON(conn, seedPath); err != nil {
			conn.Close()
			return nil, nil, err
		}

		return directory.NewSqliteDirectory(conn), func() { conn.Close() }, nil

	case "postgres":
		databaseURL := strings.TrimSpace(config.Get("DATABASE_URL", ""))
		if databaseURL == "" {
			return nil, nil, fmt.Errorf("DATABASE_URL is required when DIRECTORY_SOURCE=postgres")
		}

		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}

		return directory.NewSQLDirectory(conn), func() { conn.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown DIRECTORY_SOURCE %q (want static, sqlite or postgres)", source)
	}
}

func openSqlite(dbPath string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return conn, nil
}
