// cmd/tools/dbmigrate/main.go
//
// Standalone migration runner for padelpoint databases. The server
// applies the embedded migrations on startup; this tool covers what it
// won't do: rollbacks, version checks, and repairing a dirty version
// after a failed deploy.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	defaultDBPath         = "data/padelpoint.db"
	defaultMigrationsPath = "internal/db/migrations"
)

func main() {
	var (
		dbPath         = flag.String("db", defaultDBPath, "Path to the padelpoint SQLite database")
		migrationsPath = flag.String("migrations", defaultMigrationsPath, "Path to the migrations directory")
		command        = flag.String("command", "up", "Command to run (up, down, version, force)")
		forceVersion   = flag.Int("version", -1, "Target version for the force command")
	)
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "dbmigrate applies padelpoint schema migrations outside the server process.")
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: dbmigrate [-db path] [-migrations path] -command <up|down|version|force>")
		flag.PrintDefaults()
	}
	flag.Parse()

	absDB, err := filepath.Abs(*dbPath)
	if err != nil {
		log.Fatalf("Invalid database path: %v", err)
	}

	absMigrations, err := filepath.Abs(*migrationsPath)
	if err != nil {
		log.Fatalf("Invalid migrations path: %v", err)
	}
	if _, err := os.Stat(absMigrations); os.IsNotExist(err) {
		log.Fatalf("Migrations directory does not exist: %s", absMigrations)
	}

	if err := os.MkdirAll(filepath.Dir(absDB), 0755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	sourceURL := fmt.Sprintf("file://%s", absMigrations)
	databaseURL := fmt.Sprintf("sqlite3://%s", absDB)

	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		log.Fatalf("Failed to create migrate instance: %v", err)
	}
	defer m.Close()

	switch *command {
	case "up":
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Printf("Database %s is up to date", absDB)

	case "down":
		if err := m.Down(); err != nil && err != migrate.ErrNoChange {
			log.Fatalf("Failed to rollback migrations: %v", err)
		}
		log.Printf("Rolled back all migrations on %s", absDB)

	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			log.Fatalf("Failed to get version: %v", err)
		}
		log.Printf("Current version: %d, Dirty: %v", version, dirty)

	case "force":
		if *forceVersion < 0 {
			log.Fatal("force requires -version")
		}
		if err := m.Force(*forceVersion); err != nil {
			log.Fatalf("Failed to force version: %v", err)
		}
		log.Printf("Forced version to %d", *forceVersion)

	default:
		log.Fatalf("Unknown command: %s", *command)
	}
}
