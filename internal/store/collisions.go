package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/rcliao/viet-steno/internal/model"
)

// Collisions returns the entries of a build that share baseChord, in variant order.
func (s *SQLiteStore) Collisions(ctx context.Context, buildID, baseChord string) ([]model.Entry, error) {
	buildID, err := s.resolveBuildID(ctx, buildID)
	if err != nil {
		return nil, err
	}

	query, args, err := sq.Select(entryColumns...).From("entries").
		Where(sq.Eq{"build_id": buildID, "base_chord": baseChord}).
		OrderBy("variant").ToSql()
	if err != nil {
		return nil, err
	}
	return s.queryEntries(ctx, query, args)
}
