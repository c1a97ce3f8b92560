package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

// Export returns the chord → word table of a build, the latest when buildID is empty.
func (s *SQLiteStore) Export(ctx context.Context, buildID string) (map[string]string, error) {
	buildID, err := s.resolveBuildID(ctx, buildID)
	if err != nil {
		return nil, err
	}

	query, args, err := sq.Select(entryColumns...).From("entries").
		Where(sq.Eq{"build_id": buildID}).ToSql()
	if err != nil {
		return nil, err
	}
	entries, err := s.queryEntries(ctx, query, args)
	if err != nil {
		return nil, err
	}

	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[e.Chord] = e.Word
	}
	return m, nil
}
