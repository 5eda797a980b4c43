package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"autocase/internal/model"

	_ "github.com/lib/pq"
)

// PostgresStore implements Store using PostgreSQL.
type PostgresStore struct {
	db   *sql.DB
	keep int
}

// NewPostgresStore creates a new Postgres store and applies migrations.
func NewPostgresStore(dsn string, keep int) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if keep <= 0 {
		keep = DefaultHistoryKeep
	}
	store := &PostgresStore{db: db, keep: keep}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *PostgresStore) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS diagram_versions (
			id SERIAL PRIMARY KEY,
			application TEXT NOT NULL,
			generated TIMESTAMP NOT NULL,
			payload TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_diagram_versions_app ON diagram_versions(application, generated);`,
		`CREATE TABLE IF NOT EXISTS projects (
			name TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// SaveDiagram inserts a snapshot and prunes history beyond the retention cap.
func (s *PostgresStore) SaveDiagram(application string, generated time.Time, payload []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO diagram_versions (application, generated, payload) VALUES ($1, $2, $3)`,
		application, generated.UTC(), string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to save diagram version: %w", err)
	}

	_, err = s.db.Exec(
		`DELETE FROM diagram_versions
		 WHERE application = $1
		   AND id NOT IN (
			SELECT id FROM diagram_versions
			WHERE application = $1
			ORDER BY generated DESC, id DESC
			LIMIT $2
		 )`,
		application, s.keep,
	)
	if err != nil {
		return fmt.Errorf("failed to prune diagram history: %w", err)
	}
	return nil
}

// DiagramVersions returns stored versions for an application, newest first.
func (s *PostgresStore) DiagramVersions(application string) ([]DiagramVersion, error) {
	rows, err := s.db.Query(
		`SELECT id, application, generated, payload, created_at
		 FROM diagram_versions
		 WHERE application = $1
		 ORDER BY generated DESC, id DESC`,
		application,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versions []DiagramVersion
	for rows.Next() {
		var v DiagramVersion
		var payload string
		if err := rows.Scan(&v.ID, &v.Application, &v.Generated, &payload, &v.CreatedAt); err != nil {
			return nil, err
		}
		v.Payload = []byte(payload)
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// SaveProject upserts the project document as JSON.
func (s *PostgresStore) SaveProject(p *model.Project) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO projects (name, payload, updated_at) VALUES ($1, $2, CURRENT_TIMESTAMP)
		 ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = CURRENT_TIMESTAMP`,
		p.ProjectName, string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

// LoadProject reads a project document by name.
func (s *PostgresStore) LoadProject(name string) (*model.Project, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM projects WHERE name = $1`, name).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var p model.Project
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project %q: %w", name, err)
	}
	return &p, nil
}
