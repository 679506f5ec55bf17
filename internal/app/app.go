package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/retromenu/internal/driver"
	"github.com/atomicstack/retromenu/internal/drivers/null"
	"github.com/atomicstack/retromenu/internal/drivers/tui"
	"github.com/atomicstack/retromenu/internal/entries"
	"github.com/atomicstack/retromenu/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	DriverName   string
	Wraparound   bool
	ScrollSpeed  int
	PlaylistPath string
	Verbose      bool
}

// Run bootstraps the menu against the requested driver and executes the
// Bubble Tea program.
func Run(cfg Config) error {
	backend := tui.New()
	m, err := newMenu(cfg, backend)
	if err != nil {
		return err
	}
	defer m.Deinit()

	model := tui.NewModel(m, backend, cfg.ScrollSpeed, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// newMenu resolves the driver, initialises it, and seeds the entries store
// from the configured playlist so navigation has rows to move over from the
// first frame.
func newMenu(cfg Config, backend *tui.Backend) (*menu.Menu, error) {
	registry := driver.NewRegistry(backend.Driver(), null.Driver())

	m, err := menu.New(registry, menu.Options{
		DriverName: cfg.DriverName,
		Wraparound: cfg.Wraparound,
	})
	if err != nil {
		return nil, fmt.Errorf("resolve driver: %w", err)
	}
	if err := m.Init(); err != nil {
		return nil, fmt.Errorf("init driver: %w", err)
	}

	if cfg.PlaylistPath != "" {
		if err := m.BindPlaylist(cfg.PlaylistPath); err != nil {
			m.Deinit()
			return nil, fmt.Errorf("bind playlist: %w", err)
		}
		if err := loadPlaylistEntries(m, cfg.PlaylistPath); err != nil {
			m.Deinit()
			return nil, err
		}
	}
	return m, nil
}

// loadPlaylistEntries converts the bound playlist's records into menu rows
// and repopulates the entries store.
func loadPlaylistEntries(m *menu.Menu, path string) error {
	items := m.Playlist().Items()
	rows := make([]entries.Entry, len(items))
	for i, item := range items {
		rows[i] = entries.Entry{Path: item.Path, Label: item.Label}
	}
	if err := m.Entries().SetEntries(rows, m.Navigation()); err != nil {
		return fmt.Errorf("load playlist entries: %w", err)
	}
	m.PopulateEntries(path, m.Playlist().Name(), menu.ListPlain)
	return nil
}
