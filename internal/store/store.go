// Package store persists built chord dictionaries in SQLite.
package store

import (
	"context"
	"errors"

	"github.com/rcliao/viet-steno/internal/model"
)

// ErrNotFound is returned when a build or chord does not exist.
var ErrNotFound = errors.New("not found")

// SaveParams holds one dictionary build to store.
type SaveParams struct {
	Source   string
	Words    int
	Rejected int
	Dropped  int
	Entries  []model.Entry
}

// LookupParams holds parameters for reading one chord.
type LookupParams struct {
	BuildID string // empty means latest
	Chord   string
}

// SearchParams holds parameters for searching entries by word.
type SearchParams struct {
	BuildID string // empty means latest
	Query   string
	Limit   int
}

// Store defines the dictionary storage interface.
type Store interface {
	// SaveBuild stores a build and all of its entries. Returns the created build.
	SaveBuild(ctx context.Context, p SaveParams) (*model.Build, error)

	// GetBuild returns a build by ID, or the latest build when id is empty.
	GetBuild(ctx context.Context, id string) (*model.Build, error)

	// ListBuilds lists builds, newest first.
	ListBuilds(ctx context.Context, limit int) ([]model.Build, error)

	// Lookup returns the entry bound to a chord.
	Lookup(ctx context.Context, p LookupParams) (*model.Entry, error)

	// Search finds entries whose word contains the query.
	Search(ctx context.Context, p SearchParams) ([]model.Entry, error)

	// Collisions returns every entry that shares a base chord, by variant.
	Collisions(ctx context.Context, buildID, baseChord string) ([]model.Entry, error)

	// Export returns the chord → word table of a build.
	Export(ctx context.Context, buildID string) (map[string]string, error)

	// DeleteBuild removes a build and its entries.
	DeleteBuild(ctx context.Context, id string) error

	// Close closes the store.
	Close() error
}
