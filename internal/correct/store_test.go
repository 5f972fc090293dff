package correct

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmrs/sotd-pipeline-sub011/internal/common"
	"github.com/nmrs/sotd-pipeline-sub011/internal/model"
)

func writeStore(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "correct_matches.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const validStore = `
composite:
  "jayaruh #441 w/ ap shave co g5c":
    handle: {brand: Jayaruh, model: "#441"}
    knot: {brand: AP Shave Co, model: G5C}
handles:
  Jayaruh:
    "#441": ["jayaruh #441"]
knots:
  AP Shave Co:
    G5C: ["ap shave co g5c"]
`

func TestLoadAndLookup(t *testing.T) {
	store, err := Load(writeStore(t, validStore))
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())

	res, ok := store.Lookup("jayaruh #441 w/ ap shave co g5c")
	require.True(t, ok)
	assert.Equal(t, model.KindComposite, res.Kind)
	assert.Equal(t, StrategyName, res.Strategy)
	assert.Equal(t, "Jayaruh", res.Handle.Brand)
	assert.Equal(t, "#441", res.Handle.Model)
	assert.Equal(t, "AP Shave Co", res.Knot.Brand)
	assert.Equal(t, "G5C", res.Knot.Model)

	_, ok = store.Lookup("something else entirely")
	assert.False(t, ok)
}

func TestLoadNormalizesCompositeKeys(t *testing.T) {
	store, err := Load(writeStore(t, `
composite:
  "Jayaruh   #441 W/ AP Shave Co G5C":
    handle: {brand: Jayaruh, model: "#441"}
    knot: {brand: AP Shave Co, model: G5C}
handles:
  Jayaruh:
    "#441": []
knots:
  AP Shave Co:
    G5C: []
`))
	require.NoError(t, err)

	_, ok := store.Lookup(common.Normalize("Jayaruh   #441 W/ AP Shave Co G5C"))
	assert.True(t, ok)
}

func TestLoadFailsFastOnDanglingReference(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "handle missing",
			content: `
composite:
  "some brush":
    handle: {brand: Missing, model: Handle}
    knot: {brand: AP Shave Co, model: G5C}
knots:
  AP Shave Co:
    G5C: []
`,
		},
		{
			name: "knot model missing",
			content: `
composite:
  "some brush":
    handle: {brand: Jayaruh, model: "#441"}
    knot: {brand: AP Shave Co, model: G5A}
handles:
  Jayaruh:
    "#441": []
knots:
  AP Shave Co:
    G5C: []
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeStore(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrOverrideInconsistent)
		})
	}
}

func TestConfirmDeduplicatesComponents(t *testing.T) {
	store := NewStore()
	handle := model.ComponentRef{Brand: "Dogwood Handcrafts", Model: "Zenith B8", Source: "dogwood zenith b8"}

	store.Confirm("dogwood zenith b8 w/ ap g5c", handle, model.ComponentRef{Brand: "AP Shave Co", Model: "G5C"})
	store.Confirm("dogwood zenith b8 w/ dg b10", handle, model.ComponentRef{Brand: "Declaration Grooming", Model: "B10"})

	// Two composites, one shared handle entry referenced by both.
	assert.Equal(t, 2, store.Len())
	require.Len(t, store.handles["Dogwood Handcrafts"], 1)
	assert.Equal(t, []string{"dogwood zenith b8"}, store.handles["Dogwood Handcrafts"]["Zenith B8"])
}

func TestConfirmAppendsNewSourceStrings(t *testing.T) {
	store := NewStore()
	knot := model.ComponentRef{Brand: "AP Shave Co", Model: "G5C"}

	store.Confirm("a w/ ap g5c", model.ComponentRef{Brand: "A"}, model.ComponentRef{Brand: "AP Shave Co", Model: "G5C", Source: "AP G5C"})
	store.Confirm("b w/ ap shave co g5c", model.ComponentRef{Brand: "B"}, model.ComponentRef{Brand: "AP Shave Co", Model: "G5C", Source: "ap shave co g5c"})
	// Repeating a source must not duplicate it.
	store.Confirm("c w/ ap g5c", model.ComponentRef{Brand: "C"}, model.ComponentRef{Brand: "AP Shave Co", Model: "G5C", Source: "ap g5c"})

	assert.Equal(t, []string{"ap g5c", "ap shave co g5c"}, store.knots[knot.Brand][knot.Model])
}

func TestConfirmLastWriteWins(t *testing.T) {
	store := NewStore()
	input := "mystery brush w/ unknown knot"

	store.Confirm(input,
		model.ComponentRef{Brand: "Wrong", Model: "Guess"},
		model.ComponentRef{Brand: "Wrong", Model: "Knot"})
	store.Confirm(input,
		model.ComponentRef{Brand: "Jayaruh", Model: "#441"},
		model.ComponentRef{Brand: "AP Shave Co", Model: "G5C"})

	res, ok := store.Lookup(common.Normalize(input))
	require.True(t, ok)
	assert.Equal(t, "Jayaruh", res.Handle.Brand)
	assert.Equal(t, "AP Shave Co", res.Knot.Brand)
}

func TestSaveRoundTrip(t *testing.T) {
	store := NewStore()
	store.Confirm("jayaruh #441 w/ ap shave co g5c",
		model.ComponentRef{Brand: "Jayaruh", Model: "#441", Source: "jayaruh #441"},
		model.ComponentRef{Brand: "AP Shave Co", Model: "G5C", Source: "ap shave co g5c"})

	path := filepath.Join(t.TempDir(), "correct_matches.yaml")
	require.NoError(t, store.Save(path))

	reloaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, reloaded.Len())

	res, ok := reloaded.Lookup("jayaruh #441 w/ ap shave co g5c")
	require.True(t, ok)
	assert.Equal(t, "G5C", res.Knot.Model)
}
