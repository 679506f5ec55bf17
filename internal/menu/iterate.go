package menu

import (
	"github.com/atomicstack/retromenu/internal/driver"
	"github.com/atomicstack/retromenu/internal/logging/events"
)

// SetPendingQuickMenu schedules a quick-menu push for the next iteration.
func (m *Menu) SetPendingQuickMenu() {
	m.pendingQuickMenu = true
	events.Driver.PendingOp("quick-menu")
}

// SetPendingQuit schedules loop termination for the next iteration.
func (m *Menu) SetPendingQuit() {
	m.pendingQuit = true
	events.Driver.PendingOp("quit")
}

// SetPendingShutdown schedules a host shutdown for the next iteration.
func (m *Menu) SetPendingShutdown() {
	m.pendingShutdown = true
	events.Driver.PendingOp("shutdown")
}

// PendingQuickMenu reports the unconsumed quick-menu flag.
func (m *Menu) PendingQuickMenu() bool { return m.pendingQuickMenu }

// PendingQuit reports the unconsumed quit flag.
func (m *Menu) PendingQuit() bool { return m.pendingQuit }

// PendingShutdown reports the unconsumed shutdown flag.
func (m *Menu) PendingShutdown() bool { return m.pendingShutdown }

// Iterate runs one step of the menu loop and reports whether the loop should
// continue. Pending flags are checked in fixed priority order (quick-menu,
// quit, shutdown) and each is cleared before its effect runs, so a handler
// that re-triggers the same flag schedules a fresh pass instead of
// re-entering this one. A pending quick-menu still performs its push when
// quit is also pending; the quit is then honoured on the same pass.
func (m *Menu) Iterate(action driver.Action) bool {
	if m.pendingQuickMenu {
		m.pendingQuickMenu = false
		m.pushQuickMenu()

		if m.pendingQuit {
			m.pendingQuit = false
			return false
		}
		return true
	}

	if m.pendingQuit {
		m.pendingQuit = false
		return false
	}

	if m.pendingShutdown {
		m.pendingShutdown = false
		if m.shutdown == nil || m.shutdown() != nil {
			return false
		}
		return true
	}

	if m.drv == nil || m.drv.Iterate == nil {
		return false
	}
	return m.drv.Iterate(m.handle, action) == nil
}

// pushQuickMenu resets navigation and pushes the quick-menu list on the
// backend, unless the host installed its own handler.
func (m *Menu) pushQuickMenu() {
	if m.onQuickMenu != nil {
		m.onQuickMenu(m)
		return
	}
	m.Clear(true)
	if m.drv != nil && m.drv.ListPush != nil {
		if err := m.drv.ListPush(m.handle, ListPlain, "", QuickMenuLabel); err != nil {
			events.Driver.PendingOp("quick-menu-push-failed")
		}
	}
}
