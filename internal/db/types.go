// Package db persists project documents and the capped diagram version
// history. The core packages never touch a Store; commands load and save
// around the pure functions.
package db

import (
	"errors"
	"time"

	"autocase/internal/model"
)

// ErrNotFound is returned when a project or diagram version does not exist.
var ErrNotFound = errors.New("not found")

// DefaultHistoryKeep is how many diagram versions are retained per
// application when the config does not say otherwise.
const DefaultHistoryKeep = 3

// DiagramVersion is one stored snapshot, payload kept verbatim so a reload
// reparses the exact document that was imported.
type DiagramVersion struct {
	ID          int64     `json:"id"`
	Application string    `json:"application"`
	Generated   time.Time `json:"generated"`
	Payload     []byte    `json:"payload"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store interface defines the methods for persistent storage.
type Store interface {
	Close() error

	// SaveDiagram stores a snapshot and evicts the oldest versions beyond
	// the retention cap for that application.
	SaveDiagram(application string, generated time.Time, payload []byte) error
	// DiagramVersions lists stored versions for an application, newest
	// first by generated timestamp.
	DiagramVersions(application string) ([]DiagramVersion, error)

	SaveProject(p *model.Project) error
	LoadProject(name string) (*model.Project, error)
}

// LatestTwo returns the newest and second-newest versions for an
// application; either may be nil.
func LatestTwo(s Store, application string) (current, previous *DiagramVersion, err error) {
	versions, err := s.DiagramVersions(application)
	if err != nil {
		return nil, nil, err
	}
	if len(versions) > 0 {
		current = &versions[0]
	}
	if len(versions) > 1 {
		previous = &versions[1]
	}
	return current, previous, nil
}
