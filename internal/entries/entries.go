// Package entries holds the list currently displayed by the active menu
// backend. The navigation core borrows its size; the quick-jump index is
// rebuilt here on every repopulation.
package entries

import (
	"unicode"

	"github.com/atomicstack/retromenu/internal/logging/events"
	"github.com/atomicstack/retromenu/internal/navigation"
)

// Entry is one displayed menu row.
type Entry struct {
	Path  string
	Label string
	Type  int
}

// Store owns the ordered row list between repopulations.
type Store struct {
	entries []Entry
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// CloneEntries produces a shallow copy of the provided rows.
func CloneEntries(entries []Entry) []Entry {
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}

// SetEntries replaces the full row list, e.g. after a directory change, and
// rebuilds the quick-jump index in nav.
func (s *Store) SetEntries(entries []Entry, nav *navigation.State) error {
	s.entries = CloneEntries(entries)
	return s.rebuildScrollIndex(nav)
}

// Entries returns the current row list.
func (s *Store) Entries() []Entry {
	return s.entries
}

// Size returns the number of rows.
func (s *Store) Size() int {
	return len(s.entries)
}

// Entry returns the row at idx.
func (s *Store) Entry(idx int) (Entry, bool) {
	if idx < 0 || idx >= len(s.entries) {
		return Entry{}, false
	}
	return s.entries[idx], true
}

// Clear drops every row. The quick-jump index in nav is emptied as well.
func (s *Store) Clear(nav *navigation.State) {
	s.entries = nil
	if nav != nil {
		nav.ClearIndices()
	}
}

// rebuildScrollIndex records the position of the first row in each leading
// character bucket, in list order. Positions are therefore non-decreasing,
// which the alphabet-jump scans rely on.
func (s *Store) rebuildScrollIndex(nav *navigation.State) error {
	if nav == nil {
		return nil
	}
	nav.ClearIndices()
	if len(s.entries) == 0 {
		return nil
	}
	prev := rune(-1)
	for i, entry := range s.entries {
		bucket := bucketFor(entry.Label)
		if bucket == prev {
			continue
		}
		if err := nav.AppendIndex(i); err != nil {
			return err
		}
		prev = bucket
	}
	events.Navigation.IndexRebuilt(nav.IndexSize(), len(s.entries))
	return nil
}

// bucketFor folds a label's first rune into its jump bucket: letters fold
// case, digits share one bucket, everything else shares the symbol bucket.
func bucketFor(label string) rune {
	for _, r := range label {
		switch {
		case unicode.IsLetter(r):
			return unicode.ToUpper(r)
		case unicode.IsDigit(r):
			return '0'
		default:
			return '*'
		}
	}
	return '*'
}
