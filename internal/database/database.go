// Package database persists the volcano catalog in sqlite so repeated runs
// do not re-parse the source CSV.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/delorianv/volcano-eruptions/internal/paths"
)

// CatalogDB is the handle to the volcano catalog.
type CatalogDB struct {
	db   *sql.DB
	path string
	mu   sync.RWMutex
}

// Open opens or creates the catalog at the default location.
func Open() (*CatalogDB, error) {
	dbPath, err := paths.DatabasePath()
	if err != nil {
		return nil, fmt.Errorf("unable to resolve database path: %w", err)
	}
	return OpenPath(dbPath)
}

// OpenPath opens or creates the catalog at a specific path.
func OpenPath(path string) (*CatalogDB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("unable to create database directory: %w", err)
	}

	// WAL keeps reads cheap while an import is in flight. The modernc driver
	// takes pragmas in _pragma=name(value) form.
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	cdb := &CatalogDB{db: db, path: path}
	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to migrate database: %w", err)
	}
	return cdb, nil
}

// OpenInMemory opens an in-memory catalog for testing.
func OpenInMemory() (*CatalogDB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("unable to open in-memory database: %w", err)
	}
	// Every pooled connection would otherwise get its own empty in-memory
	// database; pin the pool to one connection.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to ping in-memory database: %w", err)
	}

	cdb := &CatalogDB{db: db, path: ":memory:"}
	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to migrate in-memory database: %w", err)
	}
	return cdb, nil
}

// Close closes the database connection.
func (c *CatalogDB) Close() error {
	return c.db.Close()
}

// Path returns the filesystem path to the database file.
func (c *CatalogDB) Path() string {
	return c.path
}
