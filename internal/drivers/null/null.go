// Package null provides the fallback backend: a capability table with only
// the required hooks. It renders nothing and never requests termination,
// which makes it the safe last entry in the driver table.
package null

import "github.com/atomicstack/retromenu/internal/driver"

type handle struct{}

// Driver returns the null capability table.
func Driver() *driver.Driver {
	return &driver.Driver{
		Ident:   "null",
		Init:    func() (interface{}, error) { return &handle{}, nil },
		Iterate: func(interface{}, driver.Action) error { return nil },
	}
}
