// Package navigation holds the cursor and quick-jump index state shared by
// every menu backend. All operations are synchronous and bounded; callers
// running multiple goroutines must serialize access themselves.
package navigation

import "errors"

// ScrollIndexCap bounds the quick-jump table: one slot per letter bucket in
// each scan direction, two extra buckets for symbols and digits, plus a
// sentinel. Populators never legitimately exceed it.
const ScrollIndexCap = 2*(26+2) + 1

// ErrScrollIndexFull reports an index append beyond the fixed bucket bound.
// Hitting it means the populator is broken, not that the list is too large.
var ErrScrollIndexFull = errors.New("navigation: scroll index full")

// State tracks the selected row, the quick-jump positions rebuilt on every
// list repopulation, and the advisory scroll acceleration counter.
type State struct {
	selection int
	index     []int
	accel     int
}

// NewState returns an empty navigation state.
func NewState() *State {
	return &State{index: make([]int, 0, ScrollIndexCap)}
}

// Selection returns the current cursor position.
func (s *State) Selection() int {
	return s.selection
}

// SetSelection moves the cursor to an absolute position.
func (s *State) SetSelection(v int) {
	if v < 0 {
		v = 0
	}
	s.selection = v
}

// ScrollAcceleration returns the held-scroll speed counter.
func (s *State) ScrollAcceleration() int {
	return s.accel
}

// SetScrollAcceleration stores the held-scroll speed counter. The value is
// advisory; the input layer owns its meaning.
func (s *State) SetScrollAcceleration(v int) {
	if v < 0 {
		v = 0
	}
	s.accel = v
}

// ClearIndices empties the quick-jump table. Alphabet jumps report no
// movement until the table is repopulated.
func (s *State) ClearIndices() {
	s.index = s.index[:0]
}

// AppendIndex records the absolute position of the next bucket boundary.
// Positions must arrive in non-decreasing order; the table is not sorted.
func (s *State) AppendIndex(pos int) error {
	if len(s.index) >= ScrollIndexCap {
		return ErrScrollIndexFull
	}
	s.index = append(s.index, pos)
	return nil
}

// IndexSize returns the number of populated bucket boundaries.
func (s *State) IndexSize() int {
	return len(s.index)
}

// Reset zeroes the cursor, the quick-jump table, and the acceleration
// counter. Called when the owning menu binding is torn down.
func (s *State) Reset() {
	s.selection = 0
	s.accel = 0
	s.index = s.index[:0]
}

// Increment moves the cursor forward by step over a list of listSize rows.
// Reports false without moving when the list is empty or the cursor already
// sits on the last row with wraparound disabled. Overshooting the end wraps
// to the first row when wrap is set, otherwise clamps to the last row.
func (s *State) Increment(step, listSize int, wrap bool) bool {
	if listSize <= 0 {
		return false
	}
	if s.selection >= listSize-1 && !wrap {
		return false
	}
	if step < 0 {
		step = 0
	}
	if s.selection+step < listSize {
		s.selection += step
	} else if wrap {
		s.selection = 0
	} else {
		s.selection = listSize - 1
	}
	return true
}

// Decrement moves the cursor backward by step. Reports false without moving
// when the list is empty or the cursor is on the first row with wraparound
// disabled. Undershooting the start wraps to the last row when wrap is set,
// otherwise clamps to the first row.
func (s *State) Decrement(step, listSize int, wrap bool) bool {
	if listSize <= 0 {
		return false
	}
	if s.selection == 0 && !wrap {
		return false
	}
	if step < 0 {
		step = 0
	}
	if s.selection >= step {
		s.selection -= step
	} else if wrap {
		s.selection = listSize - 1
	} else {
		s.selection = 0
	}
	return true
}

// SetLast moves the cursor to the final row, or to 0 for an empty list.
func (s *State) SetLast(listSize int) {
	if listSize <= 0 {
		s.selection = 0
		return
	}
	s.selection = listSize - 1
}

// Clear resets the cursor to the first row.
func (s *State) Clear() {
	s.selection = 0
}

// AscendAlphabet jumps to the first row of the next bucket. When the cursor
// already sits on (or past) the last bucket boundary it jumps to the final
// row instead, so repeated calls settle there. Boundaries past the end of a
// shrunken list clamp to the final row. Reports false when either the table
// or the list is empty.
func (s *State) AscendAlphabet(listSize int) bool {
	if len(s.index) == 0 || listSize <= 0 {
		return false
	}
	if s.selection >= s.index[len(s.index)-1] {
		s.selection = listSize - 1
		return true
	}
	i := 0
	for i < len(s.index)-1 && s.index[i+1] <= s.selection {
		i++
	}
	s.selection = s.index[i+1]
	if s.selection >= listSize {
		s.selection = listSize - 1
	}
	return true
}

// DescendAlphabet jumps to the first row of the previous bucket, scanning
// the table backward for the largest boundary below the cursor. The cursor
// stays put when no such boundary exists. Reports false when the table is
// empty or the cursor is already on the first row.
func (s *State) DescendAlphabet() bool {
	if len(s.index) == 0 || s.selection == 0 {
		return false
	}
	i := len(s.index) - 1
	for i > 0 && s.index[i-1] >= s.selection {
		i--
	}
	if i > 0 {
		s.selection = s.index[i-1]
	}
	return true
}
