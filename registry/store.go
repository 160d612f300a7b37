// Package registry tracks which library modules are mounted where, on top
// of a pluggable Store. This is ambient infrastructure around the router,
// not part of the reference/op algebra: the core packages never import it.
package registry

import (
	"context"
	"errors"

	"github.com/TinyChain-Inc/tc-ir/id"
	"github.com/TinyChain-Inc/tc-ir/library"
)

// ErrNotFound is returned when a schema is not present in a Store.
var ErrNotFound = errors.New("library schema not found")

// Store is the persistence layer for library schemas. Implementations must
// be safe for concurrent use.
type Store interface {
	// Put stores or replaces the schema for schema.Id().
	Put(ctx context.Context, schema library.Schema) error
	// Get retrieves the schema registered at libID. ok is false if absent.
	Get(ctx context.Context, libID id.Link) (schema library.Schema, ok bool, err error)
	// List returns every schema currently in the store.
	List(ctx context.Context) ([]library.Schema, error)
	// Delete removes the schema registered at libID. Returns ErrNotFound if
	// it isn't present.
	Delete(ctx context.Context, libID id.Link) error
}
