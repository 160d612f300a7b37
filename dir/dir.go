// Package dir implements the hierarchical path-to-handler router used to
// mount a library module's verb handlers.
package dir

import (
	"sort"

	"github.com/TinyChain-Inc/tc-ir/id"
)

// Dir is a tree whose interior nodes are ordered maps of PathSegment to
// either a nested Dir or a leaf Handler. The root itself may never carry a
// handler; a handler may not be mounted above or below another handler.
type Dir[H any] struct {
	entries map[id.PathSegment]dirEntry[H]
}

type dirEntry[H any] struct {
	dir     *Dir[H]
	handler H
	isDir   bool
}

// New returns an empty Dir.
func New[H any]() *Dir[H] {
	return &Dir[H]{entries: make(map[id.PathSegment]dirEntry[H])}
}

// Route is a single (path, handler) pair accepted by FromRoutes.
type Route[H any] struct {
	Path    id.Path
	Handler H
}

// FromRoutes builds a Dir from a collection of (path, handler) pairs. The
// empty path is rejected; mounting two handlers at the same path, or a
// handler beneath an existing handler, is a conflict.
func FromRoutes[H any](routes []Route[H]) (*Dir[H], error) {
	d := New[H]()
	for _, r := range routes {
		if len(r.Path) == 0 {
			return nil, id.Errorf("cannot mount handler at root")
		}
		if err := d.insertSegments(r.Path, r.Handler); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Dir[H]) insertSegments(path id.Path, handler H) error {
	head, tail := path[0], path[1:]

	if len(tail) == 0 {
		if _, exists := d.entries[head]; exists {
			return id.Errorf("handler already mounted at path %s", path.String())
		}
		d.entries[head] = dirEntry[H]{handler: handler}
		return nil
	}

	entry, exists := d.entries[head]
	if !exists {
		entry = dirEntry[H]{dir: New[H](), isDir: true}
		d.entries[head] = entry
	}
	if !entry.isDir {
		return id.Errorf("cannot mount handler below a leaf handler at %s", path.String())
	}
	return entry.dir.insertSegments(tail, handler)
}

// Route walks path segment by segment and returns the handler mounted
// there. It returns false unless the walk lands exactly on a Handler leaf
// with the full path consumed; prefix matches on interior nodes, and
// overruns past a leaf, both return false. There is no wildcard or
// partial-path dispatch.
func (d *Dir[H]) Route(path id.Path) (H, bool) {
	var zero H
	if len(path) == 0 {
		return zero, false
	}
	head, tail := path[0], path[1:]
	entry, ok := d.entries[head]
	if !ok {
		return zero, false
	}
	if entry.isDir {
		return entry.dir.Route(tail)
	}
	if len(tail) != 0 {
		return zero, false
	}
	return entry.handler, true
}

// Segments returns this Dir's immediate child segments in ascending order,
// for deterministic iteration over siblings.
func (d *Dir[H]) Segments() []id.PathSegment {
	segs := make([]id.PathSegment, 0, len(d.entries))
	for seg := range d.entries {
		segs = append(segs, seg)
	}
	sort.Slice(segs, func(i, j int) bool { return segs[i].Less(segs[j]) })
	return segs
}
