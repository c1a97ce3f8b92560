package store

import (
	"context"
	"errors"
	"testing"

	"github.com/rcliao/viet-steno/internal/model"
)

func seedStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	s := newTestStore(t)
	b, err := s.SaveBuild(context.Background(), SaveParams{Entries: sampleEntries()})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	return s, b.ID
}

func TestLookup(t *testing.T) {
	ctx := context.Background()
	s, id := seedStore(t)

	e, err := s.Lookup(ctx, LookupParams{BuildID: id, Chord: "TKA*URPBTSD"})
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if e.Word != "đau khổ" || e.Variant != 1 {
		t.Errorf("unexpected entry %+v", e)
	}

	// Empty build ID reads the latest build.
	if _, err := s.Lookup(ctx, LookupParams{Chord: "KHRO*EUFRT"}); err != nil {
		t.Errorf("lookup latest: %v", err)
	}

	_, err = s.Lookup(ctx, LookupParams{BuildID: id, Chord: "STKPW"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	s, _ := seedStore(t)

	got, err := s.Search(ctx, SearchParams{Query: "khổ"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d: %+v", len(got), got)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Word > got[i].Word {
			t.Errorf("results not sorted by word: %q before %q", got[i-1].Word, got[i].Word)
		}
	}

	got, _ = s.Search(ctx, SearchParams{Query: "khổ", Limit: 1})
	if len(got) != 1 {
		t.Errorf("expected limit 1, got %d", len(got))
	}

	got, _ = s.Search(ctx, SearchParams{Query: "không có"})
	if len(got) != 0 {
		t.Errorf("expected no results, got %d", len(got))
	}
}

func TestSearch_WildcardsAreLiteral(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	entries := append(sampleEntries(),
		model.Entry{Chord: "S*S", Word: "50% giảm", BaseChord: "S*S"},
		model.Entry{Chord: "T*T", Word: "a_b", BaseChord: "T*T"},
	)
	if _, err := s.SaveBuild(ctx, SaveParams{Entries: entries}); err != nil {
		t.Fatalf("save: %v", err)
	}

	for query, want := range map[string]string{"%": "50% giảm", "_": "a_b"} {
		got, err := s.Search(ctx, SearchParams{Query: query})
		if err != nil {
			t.Fatalf("search %q: %v", query, err)
		}
		if len(got) != 1 || got[0].Word != want {
			t.Errorf("search %q: expected only %q, got %+v", query, want, got)
		}
	}
}

func TestSearch_NoBuilds(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Search(context.Background(), SearchParams{Query: "a"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCollisions(t *testing.T) {
	ctx := context.Background()
	s, id := seedStore(t)

	got, err := s.Collisions(ctx, id, "TKA*URPBTS")
	if err != nil {
		t.Fatalf("collisions: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	for i, e := range got {
		if e.Variant != i {
			t.Errorf("expected variant %d at %d, got %d", i, i, e.Variant)
		}
	}
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	s, id := seedStore(t)

	m, err := s.Export(ctx, id)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(m) != 4 {
		t.Fatalf("expected 4 chords, got %d", len(m))
	}
	if m["TKA*URPBTSDZ"] != "đâu khổ" {
		t.Errorf("unexpected word %q", m["TKA*URPBTSDZ"])
	}
}
