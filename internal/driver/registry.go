package driver

import "strings"

// Registry holds the fixed, ordered table of compiled-in backends. Order is
// significant: an unresolvable configured name falls back to the first
// entry.
type Registry struct {
	drivers []*Driver
}

// NewRegistry builds a registry from the given table. Entries without an
// ident are skipped.
func NewRegistry(drivers ...*Driver) *Registry {
	table := make([]*Driver, 0, len(drivers))
	for _, d := range drivers {
		if d == nil || d.Ident == "" {
			continue
		}
		table = append(table, d)
	}
	return &Registry{drivers: table}
}

// Find resolves a backend by ident.
func (r *Registry) Find(ident string) (*Driver, bool) {
	for _, d := range r.drivers {
		if d.Ident == ident {
			return d, true
		}
	}
	return nil, false
}

// First returns the fallback backend, or nil for an empty table.
func (r *Registry) First() *Driver {
	if len(r.drivers) == 0 {
		return nil
	}
	return r.drivers[0]
}

// Idents lists the registered backend names in table order.
func (r *Registry) Idents() []string {
	idents := make([]string, 0, len(r.drivers))
	for _, d := range r.drivers {
		idents = append(idents, d.Ident)
	}
	return idents
}

// Options returns the backend names joined by '|' for settings enumeration.
func (r *Registry) Options() string {
	return strings.Join(r.Idents(), "|")
}
