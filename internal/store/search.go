package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/rcliao/viet-steno/internal/model"
)

var entryColumns = []string{"chord", "word", "base_chord", "variant"}

// likeEscaper makes LIKE wildcards in a query match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// Lookup returns the word bound to a chord in a build.
func (s *SQLiteStore) Lookup(ctx context.Context, p LookupParams) (*model.Entry, error) {
	buildID, err := s.resolveBuildID(ctx, p.BuildID)
	if err != nil {
		return nil, err
	}

	query, args, err := sq.Select(entryColumns...).From("entries").
		Where(sq.Eq{"build_id": buildID, "chord": p.Chord}).ToSql()
	if err != nil {
		return nil, err
	}

	e, err := scanEntry(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("chord %s: %w", p.Chord, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Search returns entries whose word contains the query, ordered by word.
func (s *SQLiteStore) Search(ctx context.Context, p SearchParams) ([]model.Entry, error) {
	buildID, err := s.resolveBuildID(ctx, p.BuildID)
	if err != nil {
		return nil, err
	}
	if p.Limit <= 0 {
		p.Limit = 20
	}

	q := sq.Select(entryColumns...).From("entries").
		Where(sq.Eq{"build_id": buildID}).
		OrderBy("word", "variant").
		Limit(uint64(p.Limit))
	if p.Query != "" {
		q = q.Where(sq.Expr(`word LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(p.Query)+"%"))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	return s.queryEntries(ctx, query, args)
}

func (s *SQLiteStore) queryEntries(ctx context.Context, query string, args []interface{}) ([]model.Entry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
