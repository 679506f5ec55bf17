package menu

import (
	"fmt"

	"github.com/atomicstack/retromenu/internal/logging"
	"github.com/atomicstack/retromenu/internal/playlist"
)

// BindPlaylist loads the playlist at path and binds it to the menu,
// releasing any previous binding. Empty paths are rejected.
func (m *Menu) BindPlaylist(path string) error {
	if path == "" {
		return fmt.Errorf("bind playlist: empty path")
	}
	p, err := playlist.Load(path, m.playlistCapacity)
	if err != nil {
		return fmt.Errorf("bind playlist: %w", err)
	}
	m.list = p
	m.listPath = path
	return nil
}

// Playlist returns the bound playlist, or nil when none is bound.
func (m *Menu) Playlist() *playlist.Playlist {
	return m.list
}

// FreePlaylist drops the playlist binding.
func (m *Menu) FreePlaylist() {
	m.list = nil
	m.listPath = ""
}

// RecordHistory pushes the current selection onto the bound playlist and
// persists it, so recently chosen content sorts first on the next run.
// Reports false when no playlist is bound or the selection is out of range.
func (m *Menu) RecordHistory() bool {
	if m.list == nil {
		return false
	}
	entry, ok := m.store.Entry(m.nav.Selection())
	if !ok {
		return false
	}
	m.list.Push(playlist.Item{Path: entry.Path, Label: entry.Label})
	if err := m.list.Save(m.listPath); err != nil {
		logging.Warn("menu: record history: %v", err)
		return false
	}
	return true
}
