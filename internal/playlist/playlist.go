// Package playlist implements the content playlist bound to the menu on
// request and released at deinit.
package playlist

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultCapacity matches the bound used when the menu binds a collection.
const DefaultCapacity = 99

// Item is one playlist record.
type Item struct {
	Path  string `toml:"path"`
	Label string `toml:"label"`
	Core  string `toml:"core,omitempty"`
}

type document struct {
	Name  string `toml:"name,omitempty"`
	Items []Item `toml:"items,omitempty"`
}

// Playlist is an ordered, capacity-bounded list of content items.
type Playlist struct {
	name     string
	capacity int
	items    []Item
}

// New returns an empty playlist with the given capacity. Non-positive
// capacities fall back to DefaultCapacity.
func New(name string, capacity int) *Playlist {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Playlist{name: name, capacity: capacity}
}

// Load reads a TOML playlist file. A missing file yields an empty playlist
// so first runs work without setup.
func Load(path string, capacity int) (*Playlist, error) {
	p := New("", capacity)
	bytes, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read playlist: %w", err)
	}
	var doc document
	if err := toml.Unmarshal(bytes, &doc); err != nil {
		return nil, fmt.Errorf("parse playlist: %w", err)
	}
	p.name = doc.Name
	if len(doc.Items) > p.capacity {
		doc.Items = doc.Items[:p.capacity]
	}
	p.items = doc.Items
	return p, nil
}

// Save writes the playlist back out as TOML.
func (p *Playlist) Save(path string) error {
	doc := document{Name: p.name, Items: p.items}
	bytes, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode playlist: %w", err)
	}
	if err := os.WriteFile(path, bytes, 0o644); err != nil {
		return fmt.Errorf("write playlist: %w", err)
	}
	return nil
}

// Push inserts an item at the front, removing any earlier record with the
// same path and trimming to capacity. History playlists use this so the most
// recent content sorts first.
func (p *Playlist) Push(item Item) {
	items := make([]Item, 0, len(p.items)+1)
	items = append(items, item)
	for _, existing := range p.items {
		if existing.Path == item.Path {
			continue
		}
		items = append(items, existing)
	}
	if len(items) > p.capacity {
		items = items[:p.capacity]
	}
	p.items = items
}

// Name returns the playlist display name.
func (p *Playlist) Name() string {
	return p.name
}

// Size returns the number of records.
func (p *Playlist) Size() int {
	return len(p.items)
}

// Items returns the records in order.
func (p *Playlist) Items() []Item {
	return p.items
}
