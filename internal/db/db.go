package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

// dbPathOverride is set from config before the first GetDB call.
var dbPathOverride string

// SetPath overrides the database location. It has no effect once the
// connection is open.
func SetPath(path string) {
	dbPathOverride = path
}

// GetDB returns the database connection, initializing if needed
func GetDB() (*sql.DB, error) {
	if db != nil {
		return db, nil
	}

	dbPath, err := GetDBPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	conn, err := Open(dbPath)
	if err != nil {
		return nil, err
	}

	if err := InitSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	db = conn
	return db, nil
}

// Open opens a SQLite database at path with foreign keys enabled.
// Use ":memory:" for a throwaway database.
func Open(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Foreign keys are per connection; a single connection keeps the
	// pragma and in-memory databases consistent.
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return conn, nil
}

// Close closes the database connection
func Close() error {
	if db != nil {
		err := db.Close()
		db = nil
		return err
	}
	return nil
}

// GetDBPath returns the path to the database file
func GetDBPath() (string, error) {
	if dbPathOverride != "" {
		return dbPathOverride, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".tripline", "tripline.db"), nil
}
