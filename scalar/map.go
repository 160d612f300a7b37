package scalar

import (
	"fmt"
	"sort"

	"github.com/TinyChain-Inc/tc-ir/id"
)

// Map is a deterministic Id-keyed map: iteration and encoding always walk
// keys in ascending order regardless of insertion order.
type Map[T any] struct {
	entries map[id.Id]T
}

// NewMap constructs an empty Map.
func NewMap[T any]() Map[T] {
	return Map[T]{entries: make(map[id.Id]T)}
}

// OneEntry constructs a Map with a single entry.
func OneEntry[T any](key id.Id, value T) Map[T] {
	m := NewMap[T]()
	m.Insert(key, value)
	return m
}

// Insert sets key to value, overwriting any existing entry.
func (m *Map[T]) Insert(key id.Id, value T) {
	if m.entries == nil {
		m.entries = make(map[id.Id]T)
	}
	m.entries[key] = value
}

// Get returns the value at key, if present.
func (m Map[T]) Get(key id.Id) (T, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Remove deletes and returns the value at key, if present.
func (m *Map[T]) Remove(key id.Id) (T, bool) {
	v, ok := m.entries[key]
	if ok {
		delete(m.entries, key)
	}
	return v, ok
}

// Len reports the number of entries.
func (m Map[T]) Len() int { return len(m.entries) }

// IsEmpty reports whether the map has no entries.
func (m Map[T]) IsEmpty() bool { return len(m.entries) == 0 }

// Keys returns the map's keys in ascending order.
func (m Map[T]) Keys() []id.Id {
	keys := make([]id.Id, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// Range visits every entry in ascending key order.
func (m Map[T]) Range(fn func(key id.Id, value T)) {
	for _, k := range m.Keys() {
		fn(k, m.entries[k])
	}
}

// Require removes and returns the entry named by name, parsed as an Id, or
// a NotFound error if absent.
func (m *Map[T]) Require(name string) (T, error) {
	var zero T
	key, err := id.ParseId(name)
	if err != nil {
		return zero, id.BadRequest.Err("invalid map key id %q: %s", name, err)
	}
	v, ok := m.Remove(key)
	if !ok {
		return zero, id.NotFound.Err("missing %s parameter", name)
	}
	return v, nil
}

// Optional removes and returns the entry named by name, parsed as an Id, or
// the zero value and ok=false if absent.
func (m *Map[T]) Optional(name string) (T, bool, error) {
	var zero T
	key, err := id.ParseId(name)
	if err != nil {
		return zero, false, id.BadRequest.Err("invalid map key id %q: %s", name, err)
	}
	v, ok := m.Remove(key)
	return v, ok, nil
}

// ExpectEmpty returns an Unexpected error naming the residual keys if the
// map is not empty.
func (m Map[T]) ExpectEmpty() error {
	if m.IsEmpty() {
		return nil
	}
	return id.Unexpected.Err("expected no parameters, found %v", m.Keys())
}

func (m Map[T]) String() string {
	return fmt.Sprintf("Map%v", m.Keys())
}
