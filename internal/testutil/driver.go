// Package testutil provides a recording backend for exercising the dispatch
// facade in tests.
package testutil

import (
	"errors"

	"github.com/atomicstack/retromenu/internal/driver"
)

// ErrStop is what the recorder's iterate hook returns when StopIterate is
// set.
var ErrStop = errors.New("testutil: iterate stop requested")

// Recorder captures backend hook invocations in order.
type Recorder struct {
	Calls       []string
	Handle      string
	InitErr     error
	StopIterate bool
	Freed       int
}

// NewRecorder returns a recorder whose Init yields a non-nil handle.
func NewRecorder() *Recorder {
	return &Recorder{Handle: "handle"}
}

func (r *Recorder) record(name string) {
	r.Calls = append(r.Calls, name)
}

// Called reports whether the named hook ran at least once.
func (r *Recorder) Called(name string) bool {
	for _, call := range r.Calls {
		if call == name {
			return true
		}
	}
	return false
}

// Driver builds a full capability table backed by the recorder.
func (r *Recorder) Driver(ident string) *driver.Driver {
	return &driver.Driver{
		Ident: ident,
		Init: func() (interface{}, error) {
			r.record("init")
			if r.InitErr != nil {
				return nil, r.InitErr
			}
			return r.Handle, nil
		},
		Free: func(interface{}) {
			r.record("free")
			r.Freed++
		},
		ContextReset:   func(interface{}) { r.record("context_reset") },
		ContextDestroy: func(interface{}) { r.record("context_destroy") },
		Iterate: func(_ interface{}, _ driver.Action) error {
			r.record("iterate")
			if r.StopIterate {
				return ErrStop
			}
			return nil
		},
		NavigationSet:             func(_ interface{}, _ bool) { r.record("navigation_set") },
		NavigationIncrement:       func(interface{}) { r.record("navigation_increment") },
		NavigationDecrement:       func(interface{}) { r.record("navigation_decrement") },
		NavigationSetLast:         func(interface{}) { r.record("navigation_set_last") },
		NavigationAscendAlphabet:  func(_ interface{}, _ *int) { r.record("navigation_ascend_alphabet") },
		NavigationDescendAlphabet: func(_ interface{}, _ *int) { r.record("navigation_descend_alphabet") },
		NavigationClear:           func(_ interface{}, _ bool) { r.record("navigation_clear") },
		ListPush: func(_ interface{}, _ int, _, _ string) error {
			r.record("list_push")
			return nil
		},
		Toggle: func(_ interface{}, _ bool) { r.record("toggle") },
	}
}

// MinimalDriver builds a table with only the required hooks, for exercising
// absent-capability defaults.
func MinimalDriver(ident string) *driver.Driver {
	return &driver.Driver{
		Ident:   ident,
		Init:    func() (interface{}, error) { return struct{}{}, nil },
		Iterate: func(interface{}, driver.Action) error { return nil },
	}
}
