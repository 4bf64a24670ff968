package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"ev-range-service/internal/adapters/directory"
	"ev-range-service/internal/config"
	"ev-range-service/internal/platform/db"
)

// dbtool prepares the location directory for a database-backed
// deployment: it creates the schema and loads the seed file into the
// backend named by DIRECTORY_SOURCE.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	source := config.Get("DIRECTORY_SOURCE", "sqlite")
	seedPath := config.Get("SEED_PATH", "data/seeds/locations.json")

	switch source {
	case "sqlite":
		dbPath := config.Get("DB_PATH", "data/app.db")
		conn, err := openSqlite(dbPath)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		log.Println("Initializing database schema...")
		if err := directory.InitSqliteSchema(conn); err != nil {
			log.Fatalf("schema initialization failed: %v", err)
		}
		log.Println("Schema ready.")

		log.Println("Seeding database...")
		if err := directory.SeedSqliteFromJSON(conn, seedPath); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		log.Println("Seeding complete.")

	case "postgres":
		databaseURL := strings.TrimSpace(config.Get("DATABASE_URL", ""))
		if databaseURL == "" {
			log.Fatal("DATABASE_URL is required when DIRECTORY_SOURCE=postgres")
		}

		conn, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		ctx := context.Background()

		log.Println("Initializing database schema...")
		if err := directory.InitSQLSchema(ctx, conn); err != nil {
			log.Fatalf("schema initialization failed: %v", err)
		}
		log.Println("Schema ready.")

		log.Println("Seeding database...")
		if err := directory.SeedSQLFromJSON(ctx, conn, seedPath); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		log.Println("Seeding complete.")

	default:
		log.Fatalf("unknown DIRECTORY_SOURCE %q (want sqlite or postgres)", source)
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
