package discovery

import (
	"github.com/joshyorko/consolemenu/menu"
)

// Registry is a static provider: entries are registered in code, per
// location, and handed out in registration order.
type Registry struct {
	levels map[string][]menu.Entry
}

func NewRegistry() *Registry {
	return &Registry{
		levels: make(map[string][]menu.Entry),
	}
}

// Register appends entries to a location. Registering a location with no
// entries makes it an empty, but valid, menu level.
func (it *Registry) Register(location menu.Location, entries ...menu.Entry) *Registry {
	where := location.String()
	it.levels[where] = append(it.levels[where], entries...)
	return it
}

func (it *Registry) Discover(location menu.Location) ([]menu.Entry, error) {
	entries, ok := it.levels[location.String()]
	if !ok {
		return nil, &menu.DiscoveryError{Location: location, Reason: "nothing registered"}
	}
	result := make([]menu.Entry, len(entries))
	copy(result, entries)
	return result, nil
}
