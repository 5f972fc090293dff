package brush

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nmrs/sotd-pipeline-sub011/internal/catalog"
)

func mustCatalog(t *testing.T, content string) *catalog.Catalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	c, err := catalog.Load(path)
	require.NoError(t, err)
	return c
}

const testBrushCatalog = `
brands:
  - brand: Simpson
    fiber: Badger
    knot_size_mm: 24
    patterns: ['simpson']
    models:
      - model: Chubby 2
        knot_size_mm: 27
        patterns: ['chubby\s*2', '\bch2\b']
  - brand: Semogue
    fiber: Boar
    patterns: ['semogue']
`

const testHandleCatalog = `
brands:
  - brand: Jayaruh
    patterns: ['jayaruh']
  - brand: Dogwood Handcrafts
    patterns: ['dogwood']
`

const testKnotCatalog = `
brands:
  - brand: AP Shave Co
    fiber: Synthetic
    patterns: ['ap\s*shave']
    models:
      - model: G5C
        knot_size_mm: 26
        patterns: ['\bg5c\b']
  - brand: Declaration Grooming
    fiber: Badger
    models:
      - model: B10
        patterns: ['\bb10\b']
`

func testSplitter(t *testing.T) *Splitter {
	t.Helper()
	handles := NewHandleMatcher(mustCatalog(t, testHandleCatalog))
	knots := NewKnotMatcher(mustCatalog(t, testKnotCatalog))
	return NewSplitter(handles, knots)
}
