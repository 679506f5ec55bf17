// Package driver defines the capability table implemented by concrete menu
// backends and the registry used to pick one at startup.
package driver

import "errors"

var (
	// ErrNoActiveDriver reports a request issued while nothing is bound.
	ErrNoActiveDriver = errors.New("driver: no active driver")
	// ErrInitFailed reports a backend whose Init produced no handle. Fatal
	// to the owning frontend; never retried here.
	ErrInitFailed = errors.New("driver: init failed")
	// ErrUnsupported reports a capability the bound backend does not
	// implement, for the few requests that cannot express absence as a
	// boolean default.
	ErrUnsupported = errors.New("driver: capability not implemented")
)

// Action identifies the navigation input forwarded to a backend's iterate
// hook.
type Action int

const (
	ActionNoop Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionOK
	ActionCancel
	ActionScrollUp
	ActionScrollDown
	ActionSearch
	ActionInfo
	ActionStart
	ActionSelect
	ActionToggle
	ActionQuit
)

// Driver is one backend's capability table. Init is required; Iterate is
// required for the menu loop to do anything; every other hook may be nil and
// the dispatch layer substitutes a per-request default. Backends receive the
// opaque handle their own Init returned.
type Driver struct {
	Ident string

	Init           func() (interface{}, error)
	Free           func(handle interface{})
	ContextReset   func(handle interface{})
	ContextDestroy func(handle interface{})

	// Iterate advances the backend by one step. A non-nil error requests
	// termination of the menu loop.
	Iterate func(handle interface{}, action Action) error

	NavigationSet             func(handle interface{}, scroll bool)
	NavigationIncrement       func(handle interface{})
	NavigationDecrement       func(handle interface{})
	NavigationSetLast         func(handle interface{})
	NavigationAscendAlphabet  func(handle interface{}, selection *int)
	NavigationDescendAlphabet func(handle interface{}, selection *int)
	NavigationClear           func(handle interface{}, pendingPush bool)

	ListGetEntry     func(handle interface{}, listType, idx int) interface{}
	ListGetSize      func(handle interface{}, listType int) int
	ListGetSelection func(handle interface{}) int
	ListSetSelection func(handle interface{}, selection int)
	ListCache        func(handle interface{}, listType int, action Action)
	ListInsert       func(handle interface{}, idx int, path, label string)
	ListFree         func(handle interface{}, idx, listSize int)
	ListClear        func(handle interface{})
	ListPush         func(handle interface{}, listType int, path, label string) error

	PointerTap           func(handle interface{}, x, y, ptr int, action Action) int
	PointerDown          func(handle interface{}, x, y, ptr int, action Action) int
	PointerUp            func(handle interface{}, x, y, ptr int, action Action) int
	OSKPointerAtPosition func(handle interface{}, x, y, width, height int) int

	SetThumbnailSystem            func(handle interface{}, system string)
	SetThumbnailContent           func(handle interface{}, content string)
	UpdateThumbnailPath           func(handle interface{}, selection int)
	UpdateThumbnailImage          func(handle interface{})
	UpdateSavestateThumbnailPath  func(handle interface{}, selection int)
	UpdateSavestateThumbnailImage func(handle interface{})

	PopulateEntries  func(handle interface{}, path, label string, listType int)
	LoadImage        func(handle interface{}, data interface{}, imageType int) bool
	Render           func(handle interface{}, idle bool)
	RenderMessageBox func(handle interface{}, msg string)
	Frame            func(handle interface{})
	SetTexture       func()
	BindInit         func(path, label string, listType, idx int) int
	Environment      func(envType int, data, handle interface{}) error
	Toggle           func(handle interface{}, on bool)
}
