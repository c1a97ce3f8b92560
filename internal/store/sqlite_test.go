package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rcliao/viet-steno/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleEntries() []model.Entry {
	return []model.Entry{
		{Chord: "TKA*URPBTS", Word: "đao khổ", BaseChord: "TKA*URPBTS", Variant: 0},
		{Chord: "TKA*URPBTSD", Word: "đau khổ", BaseChord: "TKA*URPBTS", Variant: 1},
		{Chord: "TKA*URPBTSDZ", Word: "đâu khổ", BaseChord: "TKA*URPBTS", Variant: 2},
		{Chord: "KHRO*EUFRT", Word: "chia tay", BaseChord: "KHRO*EUFRT", Variant: 0},
	}
}

func TestSaveAndGetBuild(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	b, err := s.SaveBuild(ctx, SaveParams{
		Source: "words.txt", Words: 6, Rejected: 2, Entries: sampleEntries(),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if b.ID == "" {
		t.Error("expected non-empty ID")
	}
	if b.Entries != 4 {
		t.Errorf("expected 4 entries, got %d", b.Entries)
	}

	got, err := s.GetBuild(ctx, b.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Source != "words.txt" || got.Words != 6 || got.Rejected != 2 || got.Entries != 4 {
		t.Errorf("unexpected build %+v", got)
	}
	if !got.CreatedAt.Equal(b.CreatedAt) {
		t.Errorf("created_at %v != %v", got.CreatedAt, b.CreatedAt)
	}
}

func TestGetBuild_Latest(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.GetBuild(ctx, ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty store, got %v", err)
	}

	s.SaveBuild(ctx, SaveParams{Source: "a"})
	second, _ := s.SaveBuild(ctx, SaveParams{Source: "b"})

	got, err := s.GetBuild(ctx, "")
	if err != nil {
		t.Fatalf("get latest: %v", err)
	}
	if got.ID != second.ID {
		t.Errorf("expected latest %s, got %s", second.ID, got.ID)
	}
}

func TestGetBuild_NotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetBuild(context.Background(), "01NOPE")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListBuilds(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	var ids []string
	for _, src := range []string{"a", "b", "c"} {
		b, err := s.SaveBuild(ctx, SaveParams{Source: src})
		if err != nil {
			t.Fatalf("save %s: %v", src, err)
		}
		ids = append(ids, b.ID)
	}

	builds, err := s.ListBuilds(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(builds) != 2 {
		t.Fatalf("expected 2 builds, got %d", len(builds))
	}
	if builds[0].ID != ids[2] || builds[1].ID != ids[1] {
		t.Errorf("expected newest first, got %s, %s", builds[0].ID, builds[1].ID)
	}
}

func TestSaveBuild_DuplicateChord(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	entries := sampleEntries()
	entries = append(entries, entries[0])
	if _, err := s.SaveBuild(ctx, SaveParams{Entries: entries}); err == nil {
		t.Fatal("expected error for duplicate chord")
	}
	if _, err := s.GetBuild(ctx, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("failed save should leave no build, got %v", err)
	}
}

func TestDeleteBuild(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	b, _ := s.SaveBuild(ctx, SaveParams{Entries: sampleEntries()})
	if err := s.DeleteBuild(ctx, b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetBuild(ctx, b.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	var n int
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n)
	if n != 0 {
		t.Errorf("expected entries removed, got %d", n)
	}

	if err := s.DeleteBuild(ctx, b.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "stats.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	defer s.Close()

	st, err := s.Stats(ctx, dbPath)
	if err != nil {
		t.Fatalf("stats on empty store: %v", err)
	}
	if st.TotalBuilds != 0 || st.LatestBuild != "" {
		t.Errorf("unexpected empty stats %+v", st)
	}

	s.SaveBuild(ctx, SaveParams{Entries: sampleEntries()[:1]})
	b, _ := s.SaveBuild(ctx, SaveParams{Entries: sampleEntries()})

	st, err = s.Stats(ctx, dbPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.TotalBuilds != 2 || st.TotalEntries != 5 {
		t.Errorf("expected 2 builds / 5 entries, got %d / %d", st.TotalBuilds, st.TotalEntries)
	}
	if st.LatestBuild != b.ID {
		t.Errorf("expected latest %s, got %s", b.ID, st.LatestBuild)
	}
	if len(st.Variants) != 3 || st.Variants[0].Count != 2 {
		t.Errorf("unexpected variant counts %+v", st.Variants)
	}
	if info, _ := os.Stat(dbPath); info == nil || st.DBSizeBytes == 0 {
		t.Error("expected db size")
	}
}
