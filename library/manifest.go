package library

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/TinyChain-Inc/tc-ir/id"
)

// manifestEntry is the YAML-tagged shape of a single library manifest: the
// id/version/dependencies a deployer publishes alongside a library so the
// registry's Schema can be reconstructed without hand-writing JSON.
type manifestEntry struct {
	Id           string   `yaml:"id"`
	Version      string   `yaml:"version"`
	Dependencies []string `yaml:"dependencies"`
}

// manifestFile is the top-level document: a list of libraries to mount.
type manifestFile struct {
	Libraries []manifestEntry `yaml:"libraries"`
}

func (e manifestEntry) toSchema() (Schema, error) {
	libID, err := id.ParseLink(e.Id)
	if err != nil {
		return Schema{}, err
	}
	deps := make([]id.Link, len(e.Dependencies))
	for i, raw := range e.Dependencies {
		link, err := id.ParseLink(raw)
		if err != nil {
			return Schema{}, err
		}
		deps[i] = link
	}
	return NewSchema(libID, e.Version, deps), nil
}

// LoadManifest reads a YAML document of the form:
//
//	libraries:
//	  - id: /lib/acme/foo
//	    version: 1.0.0
//	    dependencies: [/lib/acme/bar]
//
// and returns the Schema for each entry, in document order.
func LoadManifest(r io.Reader) ([]Schema, error) {
	var file manifestFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, id.Errorf("decode library manifest: %s", err)
	}

	schemas := make([]Schema, len(file.Libraries))
	for i, entry := range file.Libraries {
		schema, err := entry.toSchema()
		if err != nil {
			return nil, err
		}
		schemas[i] = schema
	}
	return schemas, nil
}
