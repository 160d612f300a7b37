package library_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TinyChain-Inc/tc-ir/id"
	"github.com/TinyChain-Inc/tc-ir/library"
)

func TestLoadManifest(t *testing.T) {
	doc := `
libraries:
  - id: /lib/acme/foo
    version: 1.0.0
    dependencies:
      - /lib/acme/bar
  - id: /lib/acme/bar
    version: 0.9.0
`
	schemas, err := library.LoadManifest(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, schemas, 2)

	assert.Equal(t, id.Link("/lib/acme/foo"), schemas[0].Id())
	assert.Equal(t, "1.0.0", schemas[0].Version())
	assert.Equal(t, []id.Link{"/lib/acme/bar"}, schemas[0].Dependencies())

	assert.Equal(t, id.Link("/lib/acme/bar"), schemas[1].Id())
	assert.Empty(t, schemas[1].Dependencies())
}

func TestLoadManifestEmptyDocument(t *testing.T) {
	schemas, err := library.LoadManifest(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, schemas)
}

func TestLoadManifestRejectsInvalidLink(t *testing.T) {
	doc := `
libraries:
  - id: "not a link"
    version: 1.0.0
`
	_, err := library.LoadManifest(strings.NewReader(doc))
	require.Error(t, err)
}
