package entries

import (
	"testing"

	"github.com/atomicstack/retromenu/internal/navigation"
)

func labelled(labels ...string) []Entry {
	rows := make([]Entry, len(labels))
	for i, label := range labels {
		rows[i] = Entry{Label: label, Path: "/roms/" + label}
	}
	return rows
}

func TestSetEntriesRebuildsScrollIndex(t *testing.T) {
	s := NewStore()
	nav := navigation.NewState()
	rows := labelled("Asteroids", "Alien Storm", "Bonk", "Columns", "Contra", "Darius")
	if err := s.SetEntries(rows, nav); err != nil {
		t.Fatalf("set entries: %v", err)
	}
	if nav.IndexSize() != 4 {
		t.Fatalf("expected 4 buckets, got %d", nav.IndexSize())
	}
	nav.SetSelection(0)
	nav.AscendAlphabet(s.Size())
	if nav.Selection() != 2 {
		t.Fatalf("expected jump to first B row (2), got %d", nav.Selection())
	}
	nav.AscendAlphabet(s.Size())
	if nav.Selection() != 3 {
		t.Fatalf("expected jump to first C row (3), got %d", nav.Selection())
	}
}

func TestScrollIndexBucketsFoldCaseDigitsSymbols(t *testing.T) {
	s := NewStore()
	nav := navigation.NewState()
	rows := labelled("!bios", "#config", "1942", "3 Count Bout", "alpha", "ALTER EGO", "beta")
	if err := s.SetEntries(rows, nav); err != nil {
		t.Fatalf("set entries: %v", err)
	}
	// Buckets: symbols (0), digits (2), A (4), B (6).
	if nav.IndexSize() != 4 {
		t.Fatalf("expected 4 buckets, got %d", nav.IndexSize())
	}
	nav.SetSelection(0)
	nav.AscendAlphabet(s.Size())
	if nav.Selection() != 2 {
		t.Fatalf("expected jump to digit bucket (2), got %d", nav.Selection())
	}
}

func TestSetEntriesEmptyClearsIndex(t *testing.T) {
	s := NewStore()
	nav := navigation.NewState()
	if err := s.SetEntries(labelled("One", "Two"), nav); err != nil {
		t.Fatalf("set entries: %v", err)
	}
	if err := s.SetEntries(nil, nav); err != nil {
		t.Fatalf("set empty entries: %v", err)
	}
	if nav.IndexSize() != 0 {
		t.Fatalf("expected empty index, got %d", nav.IndexSize())
	}
	if s.Size() != 0 {
		t.Fatalf("expected empty store, got %d", s.Size())
	}
}

func TestEntryAccess(t *testing.T) {
	s := NewStore()
	nav := navigation.NewState()
	if err := s.SetEntries(labelled("Gradius"), nav); err != nil {
		t.Fatalf("set entries: %v", err)
	}
	row, ok := s.Entry(0)
	if !ok || row.Label != "Gradius" {
		t.Fatalf("expected Gradius at 0, got %+v ok=%v", row, ok)
	}
	if _, ok := s.Entry(1); ok {
		t.Fatalf("expected miss past end")
	}
	if _, ok := s.Entry(-1); ok {
		t.Fatalf("expected miss for negative index")
	}
}

func TestBestMatchIndex(t *testing.T) {
	rows := labelled("Final Fight", "Fire Shark", "Forgotten Worlds", "Ghouls'n Ghosts")
	if idx := BestMatchIndex(rows, "fire shark"); idx != 1 {
		t.Fatalf("expected exact fold match 1, got %d", idx)
	}
	if idx := BestMatchIndex(rows, "forg"); idx != 2 {
		t.Fatalf("expected prefix match 2, got %d", idx)
	}
	if idx := BestMatchIndex(rows, "ghsts"); idx != 3 {
		t.Fatalf("expected fuzzy match 3, got %d", idx)
	}
	if idx := BestMatchIndex(rows, "zzzz"); idx != -1 {
		t.Fatalf("expected no match, got %d", idx)
	}
	if idx := BestMatchIndex(rows, "   "); idx != -1 {
		t.Fatalf("expected no match for blank query, got %d", idx)
	}
}

func TestFilterEntries(t *testing.T) {
	rows := labelled("Metal Slug", "Metal Slug 2", "Shock Troopers")
	filtered := FilterEntries(rows, "metal")
	if len(filtered) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(filtered))
	}
	if filtered[0].Label != "Metal Slug" || filtered[1].Label != "Metal Slug 2" {
		t.Fatalf("expected list order preserved, got %+v", filtered)
	}
	all := FilterEntries(rows, "")
	if len(all) != len(rows) {
		t.Fatalf("expected full copy for empty query, got %d", len(all))
	}
}
