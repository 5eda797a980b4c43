package db

import (
	"fmt"
	"strings"
)

// StoreConfig holds configuration for the storage backend.
type StoreConfig struct {
	Driver           string // "sqlite" or "postgres"
	ConnectionString string // File path for SQLite, DSN for Postgres
	HistoryKeep      int    // Diagram versions retained per application
}

// NewStore creates a new Store instance based on the provided configuration.
func NewStore(config StoreConfig) (Store, error) {
	switch strings.ToLower(config.Driver) {
	case "postgres", "postgresql":
		if config.ConnectionString == "" {
			return nil, fmt.Errorf("postgres connection string is required")
		}
		return NewPostgresStore(config.ConnectionString, config.HistoryKeep)
	case "sqlite", "sqlite3", "":
		if config.ConnectionString == "" {
			config.ConnectionString = ".autocase.db"
		}
		return NewSQLiteStore(config.ConnectionString, config.HistoryKeep)
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", config.Driver)
	}
}
