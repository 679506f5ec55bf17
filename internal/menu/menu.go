// Package menu owns the active driver binding and routes the frontend's
// request surface to the bound backend's capability table. One Menu exists
// per menu subsystem; all methods must be called from a single goroutine.
package menu

import (
	"fmt"

	"github.com/atomicstack/retromenu/internal/driver"
	"github.com/atomicstack/retromenu/internal/entries"
	"github.com/atomicstack/retromenu/internal/logging"
	"github.com/atomicstack/retromenu/internal/logging/events"
	"github.com/atomicstack/retromenu/internal/navigation"
	"github.com/atomicstack/retromenu/internal/playlist"
)

// List kinds forwarded to backend list hooks.
const (
	ListPlain = iota
	ListHorizontal
	ListTabs
)

// QuickMenuLabel names the list pushed when a pending quick-menu flag is
// consumed.
const QuickMenuLabel = "quick_menu"

// Options configure a Menu at construction time.
type Options struct {
	// DriverName selects the backend; an unknown name falls back to the
	// registry's first entry with a logged diagnostic.
	DriverName string
	// Wraparound continues cursor movement from the opposite list end.
	Wraparound bool
	// PlaylistCapacity bounds bound playlists. Zero uses the package
	// default.
	PlaylistCapacity int
	// OnQuickMenu overrides what a consumed quick-menu flag does. The
	// default clears navigation with a pending push and pushes the quick
	// menu list on the backend.
	OnQuickMenu func(*Menu)
	// Shutdown issues the host's shutdown command when a pending shutdown
	// flag is consumed. A nil hook or a returned error terminates the
	// iteration loop.
	Shutdown func() error
}

// Menu is the dispatch facade plus the navigation and pending-op state it
// coordinates.
type Menu struct {
	registry *driver.Registry
	drv      *driver.Driver
	handle   interface{}

	nav      *navigation.State
	store    *entries.Store
	list     *playlist.Playlist
	listPath string

	wraparound       bool
	playlistCapacity int
	onQuickMenu      func(*Menu)
	shutdown         func() error

	pendingQuickMenu bool
	pendingQuit      bool
	pendingShutdown  bool

	alive           bool
	toggled         bool
	bindingState    bool
	preventPopulate bool
	ownDriver       bool
	loadNoContent   bool
}

// New resolves the configured driver against the registry and returns an
// unbound menu. Init must run before dispatch does anything.
func New(registry *driver.Registry, opts Options) (*Menu, error) {
	m := &Menu{
		registry:         registry,
		nav:              navigation.NewState(),
		store:            entries.NewStore(),
		wraparound:       opts.Wraparound,
		playlistCapacity: opts.PlaylistCapacity,
		onQuickMenu:      opts.OnQuickMenu,
		shutdown:         opts.Shutdown,
	}
	if err := m.FindDriver(opts.DriverName); err != nil {
		return nil, err
	}
	return m, nil
}

// FindDriver resolves ident against the driver table. Unknown names recover
// by falling back to the first table entry; an empty table is fatal.
func (m *Menu) FindDriver(ident string) error {
	if d, ok := m.registry.Find(ident); ok {
		m.drv = d
		events.Driver.Found(d.Ident)
		return nil
	}
	first := m.registry.First()
	if first == nil {
		return fmt.Errorf("find driver %q: %w", ident, driver.ErrNoActiveDriver)
	}
	logging.Warn("menu: no driver named %q, falling back to %q (available: %s)",
		ident, first.Ident, m.registry.Options())
	events.Driver.Fallback(ident, first.Ident, m.registry.Idents())
	m.drv = first
	return nil
}

// Init asks the resolved backend for its handle. Failure is fatal to the
// owning frontend and is surfaced, never retried.
func (m *Menu) Init() error {
	if m.drv == nil {
		return driver.ErrNoActiveDriver
	}
	if m.drv.Init == nil {
		return fmt.Errorf("driver %q has no init: %w", m.drv.Ident, driver.ErrInitFailed)
	}
	handle, err := m.drv.Init()
	if err != nil {
		return fmt.Errorf("driver %q: %v: %w", m.drv.Ident, err, driver.ErrInitFailed)
	}
	if handle == nil {
		return fmt.Errorf("driver %q returned no handle: %w", m.drv.Ident, driver.ErrInitFailed)
	}
	m.handle = handle
	if m.drv.ContextReset != nil {
		m.drv.ContextReset(m.handle)
	}
	events.Driver.Init(m.drv.Ident)
	return nil
}

// Deinit destroys the binding: backend context teardown, handle release
// (exactly once), playlist free, and navigation reset. With the own-driver
// flag set the backend keeps its handle and only the context is destroyed.
func (m *Menu) Deinit() {
	if m.drv == nil {
		return
	}
	if m.drv.ContextDestroy != nil {
		m.drv.ContextDestroy(m.handle)
	}
	if m.ownDriver {
		return
	}
	events.Driver.Deinit(m.drv.Ident)
	if m.handle != nil && m.drv.Free != nil {
		m.drv.Free(m.handle)
	}
	m.handle = nil
	m.list = nil
	m.listPath = ""
	m.store.Clear(m.nav)
	m.nav.Reset()
	m.pendingQuickMenu = false
	m.pendingQuit = false
	m.pendingShutdown = false
	m.alive = false
	m.toggled = false
	m.preventPopulate = false
	m.loadNoContent = false
	m.drv = nil
}

// Bound reports whether a driver is resolved and initialised.
func (m *Menu) Bound() bool {
	return m.drv != nil && m.handle != nil
}

// Ident returns the active backend name, or "" while the menu is not alive.
func (m *Menu) Ident() string {
	if !m.alive || m.drv == nil {
		return ""
	}
	return m.drv.Ident
}

// Driver exposes the resolved capability table, mainly for tests.
func (m *Menu) Driver() *driver.Driver {
	return m.drv
}

// Navigation exposes the cursor state shared with list populators.
func (m *Menu) Navigation() *navigation.State {
	return m.nav
}

// Entries exposes the borrowed list store.
func (m *Menu) Entries() *entries.Store {
	return m.store
}

// SetWraparound changes the boundary policy for later movements.
func (m *Menu) SetWraparound(enabled bool) {
	m.wraparound = enabled
}

// Toggle flips menu visibility and forwards to the backend hook. The alive
// flag follows the toggle, as frame/render forwarding depends on it.
func (m *Menu) Toggle(on bool) {
	m.toggled = on
	m.alive = on
	if m.drv != nil && m.drv.Toggle != nil {
		m.drv.Toggle(m.handle, on)
	}
	events.Driver.Toggle(on)
}

// Toggled reports the last Toggle value.
func (m *Menu) Toggled() bool {
	return m.toggled
}

// Alive reports whether the menu is currently active.
func (m *Menu) Alive() bool {
	return m.alive
}

// SetBindingState flags that an input-bind capture is in progress.
func (m *Menu) SetBindingState(on bool) {
	m.bindingState = on
}

// BindingState reports whether input capture owns the event stream.
func (m *Menu) BindingState() bool {
	return m.bindingState
}

// SetPreventPopulate suppresses the next entries repopulation.
func (m *Menu) SetPreventPopulate(on bool) {
	m.preventPopulate = on
}

// PreventPopulate reports the suppression flag.
func (m *Menu) PreventPopulate() bool {
	return m.preventPopulate
}

// SetOwnDriver marks the backend as owning its handle across Deinit.
func (m *Menu) SetOwnDriver(on bool) {
	m.ownDriver = on
}

// OwnsDriver reports the own-driver flag.
func (m *Menu) OwnsDriver() bool {
	return m.ownDriver
}

// SetLoadNoContent flags that the next core start runs without content.
func (m *Menu) SetLoadNoContent(on bool) {
	m.loadNoContent = on
}

// LoadNoContent reports the no-content flag.
func (m *Menu) LoadNoContent() bool {
	return m.loadNoContent
}
