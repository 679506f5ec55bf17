package menu

import "github.com/atomicstack/retromenu/internal/logging/events"

// notifySet mirrors the original ordering: every selection write informs the
// backend before the per-verb hook runs.
func (m *Menu) notifySet(scroll bool) {
	if m.drv != nil && m.drv.NavigationSet != nil {
		m.drv.NavigationSet(m.handle, scroll)
	}
}

// NavigationSet forwards a bare selection notification to the backend.
func (m *Menu) NavigationSet(scroll bool) {
	m.notifySet(scroll)
}

// Increment moves the cursor forward by step. Stepping past the end wraps to
// the first row (notifying the backend's clear hook) or clamps to the last
// row, per the wraparound policy. Reports false with no driver bound, an
// empty list, or a refused boundary move.
func (m *Menu) Increment(step int) bool {
	if m.drv == nil {
		return false
	}
	size := m.store.Size()
	before := m.nav.Selection()
	if !m.nav.Increment(step, size, m.wraparound) {
		return false
	}
	switch {
	case before+step < size:
		m.notifySet(true)
	case m.wraparound:
		m.notifySet(true)
		if m.drv.NavigationClear != nil {
			m.drv.NavigationClear(m.handle, false)
		}
		events.Navigation.Wraparound("forward", m.nav.Selection())
	default:
		if m.drv.NavigationSetLast != nil {
			m.drv.NavigationSetLast(m.handle)
		}
	}
	if m.drv.NavigationIncrement != nil {
		m.drv.NavigationIncrement(m.handle)
	}
	events.Navigation.Selection(m.nav.Selection())
	return true
}

// Decrement moves the cursor backward by step, wrapping to the last row or
// clamping to the first per the wraparound policy. Reports false with no
// driver bound, an empty list, or a refused boundary move.
func (m *Menu) Decrement(step int) bool {
	if m.drv == nil {
		return false
	}
	size := m.store.Size()
	before := m.nav.Selection()
	if !m.nav.Decrement(step, size, m.wraparound) {
		return false
	}
	m.notifySet(true)
	if before < step && m.wraparound {
		events.Navigation.Wraparound("backward", m.nav.Selection())
	}
	if m.drv.NavigationDecrement != nil {
		m.drv.NavigationDecrement(m.handle)
	}
	events.Navigation.Selection(m.nav.Selection())
	return true
}

// SetLast jumps the cursor to the final row.
func (m *Menu) SetLast() {
	if m.drv == nil {
		return
	}
	m.nav.SetLast(m.store.Size())
	if m.drv.NavigationSetLast != nil {
		m.drv.NavigationSetLast(m.handle)
	}
	events.Navigation.Selection(m.nav.Selection())
}

// Clear resets the cursor to the first row. pendingPush tells the backend
// whether a deferred list push follows, so it can skip redundant redraws.
func (m *Menu) Clear(pendingPush bool) {
	if m.drv == nil {
		return
	}
	m.nav.Clear()
	m.notifySet(true)
	if m.drv.NavigationClear != nil {
		m.drv.NavigationClear(m.handle, pendingPush)
	}
	events.Navigation.Selection(0)
}

// AscendAlphabet jumps to the next bucket boundary. The backend hook may
// adjust the landing position through the pointer it receives.
func (m *Menu) AscendAlphabet() bool {
	if m.drv == nil {
		return false
	}
	if !m.nav.AscendAlphabet(m.store.Size()) {
		return false
	}
	sel := m.nav.Selection()
	if m.drv.NavigationAscendAlphabet != nil {
		m.drv.NavigationAscendAlphabet(m.handle, &sel)
		m.nav.SetSelection(sel)
	}
	events.Navigation.AlphabetJump("forward", m.nav.Selection())
	return true
}

// DescendAlphabet jumps to the previous bucket boundary.
func (m *Menu) DescendAlphabet() bool {
	if m.drv == nil {
		return false
	}
	if !m.nav.DescendAlphabet() {
		return false
	}
	sel := m.nav.Selection()
	if m.drv.NavigationDescendAlphabet != nil {
		m.drv.NavigationDescendAlphabet(m.handle, &sel)
		m.nav.SetSelection(sel)
	}
	events.Navigation.AlphabetJump("backward", m.nav.Selection())
	return true
}

// Selection returns the current cursor position.
func (m *Menu) Selection() int {
	return m.nav.Selection()
}

// SetSelection moves the cursor without backend notification, mirroring the
// original's raw selection write.
func (m *Menu) SetSelection(idx int) {
	m.nav.SetSelection(idx)
}

// ScrollAcceleration returns the advisory held-scroll counter.
func (m *Menu) ScrollAcceleration() int {
	return m.nav.ScrollAcceleration()
}

// SetScrollAcceleration stores the advisory held-scroll counter.
func (m *Menu) SetScrollAcceleration(v int) {
	m.nav.SetScrollAcceleration(v)
}
