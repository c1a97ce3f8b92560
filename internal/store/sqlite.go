package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/viet-steno/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// newID returns a ULID; IDs from one store sort in creation order.
func (s *SQLiteStore) newID(now time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(now), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS builds (
		id          TEXT PRIMARY KEY,
		source      TEXT,
		created_at  TEXT NOT NULL,
		words       INTEGER NOT NULL DEFAULT 0,
		entries     INTEGER NOT NULL DEFAULT 0,
		rejected    INTEGER NOT NULL DEFAULT 0,
		dropped     INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS entries (
		build_id    TEXT NOT NULL REFERENCES builds(id) ON DELETE CASCADE,
		chord       TEXT NOT NULL,
		word        TEXT NOT NULL,
		base_chord  TEXT NOT NULL,
		variant     INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (build_id, chord)
	);
	CREATE INDEX IF NOT EXISTS idx_entries_base ON entries(build_id, base_chord);
	CREATE INDEX IF NOT EXISTS idx_entries_word ON entries(build_id, word);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) SaveBuild(ctx context.Context, p SaveParams) (*model.Build, error) {
	now := time.Now().UTC()
	id := s.newID(now)

	var source *string
	if p.Source != "" {
		source = &p.Source
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO builds (id, source, created_at, words, entries, rejected, dropped)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, source, now.Format(time.RFC3339), p.Words, len(p.Entries), p.Rejected, p.Dropped)
	if err != nil {
		return nil, fmt.Errorf("insert build: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entries (build_id, chord, word, base_chord, variant) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	for _, e := range p.Entries {
		if _, err := stmt.ExecContext(ctx, id, e.Chord, e.Word, e.BaseChord, e.Variant); err != nil {
			return nil, fmt.Errorf("insert entry %s: %w", e.Chord, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &model.Build{
		ID:        id,
		Source:    p.Source,
		CreatedAt: now.Truncate(time.Second),
		Words:     p.Words,
		Entries:   len(p.Entries),
		Rejected:  p.Rejected,
		Dropped:   p.Dropped,
	}, nil
}

var buildColumns = []string{"id", "source", "created_at", "words", "entries", "rejected", "dropped"}

func (s *SQLiteStore) GetBuild(ctx context.Context, id string) (*model.Build, error) {
	q := sq.Select(buildColumns...).From("builds")
	if id == "" {
		q = q.OrderBy("id DESC").Limit(1)
	} else {
		q = q.Where(sq.Eq{"id": id})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	b, err := scanBuild(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		if id == "" {
			return nil, fmt.Errorf("no builds: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("build %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *SQLiteStore) ListBuilds(ctx context.Context, limit int) ([]model.Build, error) {
	if limit <= 0 {
		limit = 20
	}
	query, args, err := sq.Select(buildColumns...).From("builds").
		OrderBy("id DESC").Limit(uint64(limit)).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var builds []model.Build
	for rows.Next() {
		b, err := scanBuild(rows)
		if err != nil {
			return nil, err
		}
		builds = append(builds, b)
	}
	return builds, rows.Err()
}

func (s *SQLiteStore) DeleteBuild(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE build_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM builds WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("build %s: %w", id, ErrNotFound)
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// resolveBuildID maps an empty ID to the latest build.
func (s *SQLiteStore) resolveBuildID(ctx context.Context, id string) (string, error) {
	b, err := s.GetBuild(ctx, id)
	if err != nil {
		return "", err
	}
	return b.ID, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBuild(row scanner) (model.Build, error) {
	var b model.Build
	var source sql.NullString
	var createdAt string

	err := row.Scan(&b.ID, &source, &createdAt, &b.Words, &b.Entries, &b.Rejected, &b.Dropped)
	if err != nil {
		return b, err
	}
	b.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if source.Valid {
		b.Source = source.String
	}
	return b, nil
}

func scanEntry(row scanner) (model.Entry, error) {
	var e model.Entry
	err := row.Scan(&e.Chord, &e.Word, &e.BaseChord, &e.Variant)
	return e, err
}
