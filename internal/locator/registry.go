// internal/locator/registry.go
package locator

import "fmt"

// Registry is a read-only mapping from a semantic element name to its
// Locator. Entries never change after construction; pages hold one Registry
// per screen.
type Registry struct {
	entries map[string]Locator
}

// NewRegistry copies entries into a new Registry. Later mutation of the
// input map does not affect the Registry.
func NewRegistry(entries map[string]Locator) Registry {
	copied := make(map[string]Locator, len(entries))
	for name, loc := range entries {
		copied[name] = loc
	}
	return Registry{entries: copied}
}

// Get returns the Locator registered under name.
func (r Registry) Get(name string) (Locator, bool) {
	loc, ok := r.entries[name]
	return loc, ok
}

// MustGet returns the Locator registered under name and panics if it is
// missing. Registries are compile-time fixtures, so a missing name is a
// programming error, not a runtime condition.
func (r Registry) MustGet(name string) Locator {
	loc, ok := r.entries[name]
	if !ok {
		panic(fmt.Sprintf("locator: no entry named %q", name))
	}
	return loc
}

// Len returns the number of registered locators.
func (r Registry) Len() int {
	return len(r.entries)
}
