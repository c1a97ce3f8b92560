package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath       string         `json:"db_path" yaml:"db_path"`
	DBSizeBytes  int64          `json:"db_size_bytes" yaml:"db_size_bytes"`
	TotalBuilds  int            `json:"total_builds" yaml:"total_builds"`
	TotalEntries int            `json:"total_entries" yaml:"total_entries"`
	LatestBuild  string         `json:"latest_build,omitempty" yaml:"latest_build,omitempty"`
	Variants     []VariantStats `json:"variants" yaml:"variants"`
}

// VariantStats counts the entries of the latest build per variant index.
type VariantStats struct {
	Variant int `json:"variant" yaml:"variant"`
	Count   int `json:"count" yaml:"count"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM builds`).Scan(&st.TotalBuilds)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&st.TotalEntries)
	if st.TotalBuilds == 0 {
		return st, nil
	}
	s.db.QueryRowContext(ctx, `SELECT id FROM builds ORDER BY id DESC LIMIT 1`).Scan(&st.LatestBuild)

	rows, err := s.db.QueryContext(ctx, `
		SELECT variant, COUNT(*) FROM entries
		WHERE build_id = ?
		GROUP BY variant ORDER BY variant`, st.LatestBuild)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var v VariantStats
		rows.Scan(&v.Variant, &v.Count)
		st.Variants = append(st.Variants, v)
	}

	return st, rows.Err()
}
