// Package tui implements the terminal menu backend. The capability table
// records what the dispatch layer tells it; the Bubble Tea model in this
// package renders from that state plus the shared entries store.
package tui

import (
	"errors"

	"github.com/atomicstack/retromenu/internal/driver"
)

// ErrQuitRequested is the iterate failure this backend returns when the
// forwarded action asks the loop to stop.
var ErrQuitRequested = errors.New("tui: quit requested")

// PushedList records one list push forwarded by the dispatch layer.
type PushedList struct {
	Type  int
	Path  string
	Label string
}

// Handle is the backend's driver-owned state, written by capability hooks
// and read by the model's View.
type Handle struct {
	rows      []string
	selection int
	scrolling bool

	// pendingPush is the last navigationClear hint; when set the backend
	// skips redraw work because a list push follows immediately.
	pendingPush bool

	lists      []PushedList
	messageBox string
	frames     int
	idle       bool

	thumbnailSystem  string
	thumbnailContent string
	thumbnailAt      int

	populatedPath  string
	populatedLabel string
	toggledOn      bool
}

// Lists returns the pushed list stack, most recent last.
func (h *Handle) Lists() []PushedList {
	return h.lists
}

// Backend owns the handle shared between the capability table and the
// model.
type Backend struct {
	handle *Handle
}

// New returns a backend with no live handle; Driver().Init creates one.
func New() *Backend {
	return &Backend{}
}

// Handle returns the live handle, or nil before Init ran.
func (b *Backend) Handle() *Handle {
	return b.handle
}

// Driver builds the backend's capability table.
func (b *Backend) Driver() *driver.Driver {
	return &driver.Driver{
		Ident: "tui",
		Init: func() (interface{}, error) {
			b.handle = &Handle{}
			return b.handle, nil
		},
		Free: func(h interface{}) {
			if h == b.handle {
				b.handle = nil
			}
		},
		ContextReset:   func(interface{}) {},
		ContextDestroy: func(interface{}) {},
		Iterate: func(_ interface{}, action driver.Action) error {
			if action == driver.ActionQuit {
				return ErrQuitRequested
			}
			return nil
		},
		NavigationSet: func(h interface{}, scroll bool) {
			asHandle(h).scrolling = scroll
		},
		NavigationClear: func(h interface{}, pendingPush bool) {
			handle := asHandle(h)
			handle.selection = 0
			handle.pendingPush = pendingPush
		},
		NavigationSetLast: func(h interface{}) {
			handle := asHandle(h)
			if len(handle.rows) > 0 {
				handle.selection = len(handle.rows) - 1
			}
		},
		NavigationAscendAlphabet: func(h interface{}, selection *int) {
			asHandle(h).selection = *selection
		},
		NavigationDescendAlphabet: func(h interface{}, selection *int) {
			asHandle(h).selection = *selection
		},
		ListGetSize: func(h interface{}, _ int) int {
			return len(asHandle(h).rows)
		},
		ListGetEntry: func(h interface{}, _, idx int) interface{} {
			handle := asHandle(h)
			if idx < 0 || idx >= len(handle.rows) {
				return nil
			}
			return handle.rows[idx]
		},
		ListGetSelection: func(h interface{}) int {
			return asHandle(h).selection
		},
		ListSetSelection: func(h interface{}, selection int) {
			asHandle(h).selection = selection
		},
		ListInsert: func(h interface{}, idx int, _, label string) {
			handle := asHandle(h)
			if idx < 0 || idx > len(handle.rows) {
				idx = len(handle.rows)
			}
			handle.rows = append(handle.rows, "")
			copy(handle.rows[idx+1:], handle.rows[idx:])
			handle.rows[idx] = label
		},
		ListFree: func(h interface{}, _, _ int) {
			asHandle(h).rows = nil
		},
		ListClear: func(h interface{}) {
			asHandle(h).rows = nil
		},
		ListPush: func(h interface{}, listType int, path, label string) error {
			handle := asHandle(h)
			handle.lists = append(handle.lists, PushedList{Type: listType, Path: path, Label: label})
			handle.pendingPush = false
			return nil
		},
		SetThumbnailSystem: func(h interface{}, system string) {
			asHandle(h).thumbnailSystem = system
		},
		SetThumbnailContent: func(h interface{}, content string) {
			asHandle(h).thumbnailContent = content
		},
		UpdateThumbnailPath: func(h interface{}, selection int) {
			asHandle(h).thumbnailAt = selection
		},
		PopulateEntries: func(h interface{}, path, label string, _ int) {
			handle := asHandle(h)
			handle.populatedPath = path
			handle.populatedLabel = label
		},
		Render: func(h interface{}, idle bool) {
			asHandle(h).idle = idle
		},
		RenderMessageBox: func(h interface{}, msg string) {
			asHandle(h).messageBox = msg
		},
		Frame: func(h interface{}) {
			asHandle(h).frames++
		},
		Toggle: func(h interface{}, on bool) {
			asHandle(h).toggledOn = on
		},
	}
}

func asHandle(h interface{}) *Handle {
	handle, ok := h.(*Handle)
	if !ok || handle == nil {
		return &Handle{}
	}
	return handle
}
