// Package library pairs a schema with a routing table and dispatches
// incoming verb requests to handlers mounted under it.
package library

import (
	"encoding/json"

	"github.com/TinyChain-Inc/tc-ir/id"
)

// Schema is the static description of a library exposed through /lib:
// identifier, version, and the links it depends on to load.
type Schema struct {
	id           id.Link
	version      string
	dependencies []id.Link
}

// NewSchema constructs a Schema. dependencies may be nil.
func NewSchema(libID id.Link, version string, dependencies []id.Link) Schema {
	return Schema{id: libID, version: version, dependencies: dependencies}
}

// Id returns the library's unique identifier.
func (s Schema) Id() id.Link { return s.id }

// Version returns the advertised version string.
func (s Schema) Version() string { return s.version }

// Dependencies returns the libraries required for this module to load.
func (s Schema) Dependencies() []id.Link { return s.dependencies }

type schemaWire struct {
	Id           string   `json:"id"`
	Version      string   `json:"version"`
	Dependencies []string `json:"dependencies,omitempty"`
}

// MarshalJSON emits a map with keys id, version, dependencies; the
// dependencies key is omitted when the list is empty.
func (s Schema) MarshalJSON() ([]byte, error) {
	deps := make([]string, len(s.dependencies))
	for i, d := range s.dependencies {
		deps[i] = d.String()
	}
	return json.Marshal(schemaWire{
		Id:           s.id.String(),
		Version:      s.version,
		Dependencies: deps,
	})
}

// UnmarshalJSON accepts a map with keys id, version, and an optional
// dependencies list that defaults to empty.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var wire schemaWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Id == "" {
		return id.Errorf("library schema missing id field")
	}
	if wire.Version == "" {
		return id.Errorf("library schema missing version field")
	}
	libID, err := id.ParseLink(wire.Id)
	if err != nil {
		return err
	}
	deps := make([]id.Link, len(wire.Dependencies))
	for i, raw := range wire.Dependencies {
		link, err := id.ParseLink(raw)
		if err != nil {
			return err
		}
		deps[i] = link
	}
	*s = Schema{id: libID, version: wire.Version, dependencies: deps}
	return nil
}
