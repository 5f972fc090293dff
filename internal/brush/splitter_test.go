package brush

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmrs/sotd-pipeline-sub011/internal/model"
)

func TestSplitterSplitsOnConnective(t *testing.T) {
	s := testSplitter(t)

	res := s.Match("jayaruh #441 w/ ap shave co g5c")
	require.NotNil(t, res)
	assert.Equal(t, model.KindComposite, res.Kind)
	assert.Equal(t, "split", res.Strategy)

	require.NotNil(t, res.Handle)
	assert.Equal(t, "Jayaruh", res.Handle.Brand)
	assert.Equal(t, "", res.Handle.Model)

	require.NotNil(t, res.Knot)
	assert.Equal(t, "AP Shave Co", res.Knot.Brand)
	assert.Equal(t, "G5C", res.Knot.Model)
	assert.Equal(t, model.FiberSynthetic, res.Knot.Fiber)
	require.NotNil(t, res.Knot.KnotSizeMM)
	assert.InDelta(t, 26.0, *res.Knot.KnotSizeMM, 0.001)
}

func TestSplitterHandlesKnotInHandleOrder(t *testing.T) {
	s := testSplitter(t)

	// "knot in handle" reverses the usual orientation; both are scored
	// and the one matching both halves wins.
	res := s.Match("g5c 26mm in dogwood handle")
	require.NotNil(t, res)
	assert.Equal(t, "Dogwood Handcrafts", res.Handle.Brand)
	assert.Equal(t, "G5C", res.Knot.Model)
}

func TestSplitterAppliesKnotFallbacks(t *testing.T) {
	s := testSplitter(t)

	// Handle catalog hit plus an uncataloged knot half: fiber fallback.
	res := s.Match("dogwood handle w/ 26mm boar")
	require.NotNil(t, res)
	assert.Equal(t, "Dogwood Handcrafts", res.Handle.Brand)
	assert.Equal(t, model.FallbackBrand, res.Knot.Brand)
	assert.Equal(t, "Boar", res.Knot.Model)
	assert.Equal(t, "fiber_fallback", res.Knot.Strategy)

	// No fiber keyword: the size fallback fires instead.
	res = s.Match("dogwood handle w/ 26mm custom")
	require.NotNil(t, res)
	assert.Equal(t, "26mm", res.Knot.Model)
	assert.Equal(t, "size_fallback", res.Knot.Strategy)
}

func TestSplitterRejectsNonComposites(t *testing.T) {
	s := testSplitter(t)

	tests := []struct {
		name  string
		input string
	}{
		{name: "no delimiter", input: "simpson chubby 2"},
		{name: "delimiter but nothing recognizable", input: "foo / bar"},
		{name: "trailing delimiter", input: "jayaruh #441 w/ "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, s.Match(tt.input))
		})
	}
}

func TestSplitterPrefersSplitMatchingBothHalves(t *testing.T) {
	handles := NewHandleMatcher(mustCatalog(t, testHandleCatalog))
	knots := NewKnotMatcher(mustCatalog(t, testKnotCatalog))

	// An adversarial scorer that rewards the candidate leaving the knot
	// half unmatched. The tie-break rule is enforced by the splitter
	// itself: a split matching both halves wins regardless of score.
	s := NewSplitterWithScorer(handles, knots, func(e SplitEval) int {
		if e.HandleMatch && !e.KnotMatch {
			return 100
		}
		return scoreThreshold
	})

	// Forward: handle "jayaruh" + knot "dogwood b10" (B10) match both
	// halves. Reversed: handle "dogwood b10" matches, knot "jayaruh"
	// does not, and the scorer prefers it.
	res := s.Match("jayaruh w/ dogwood b10")
	require.NotNil(t, res)
	assert.Equal(t, "Jayaruh", res.Handle.Brand)
	assert.Equal(t, "B10", res.Knot.Model)
	assert.Equal(t, "Declaration Grooming", res.Knot.Brand)
}

func TestSplitterIsDeterministic(t *testing.T) {
	input := "jayaruh #441 w/ ap shave co g5c"

	first := testSplitter(t).Match(input)
	require.NotNil(t, first)

	for i := 0; i < 20; i++ {
		again := testSplitter(t).Match(input)
		require.NotNil(t, again)
		assert.Equal(t, *first, *again)
	}
}

func TestSplitterCustomScorer(t *testing.T) {
	handles := NewHandleMatcher(mustCatalog(t, testHandleCatalog))
	knots := NewKnotMatcher(mustCatalog(t, testKnotCatalog))

	// A scorer that rejects everything turns the splitter off entirely.
	off := NewSplitterWithScorer(handles, knots, func(SplitEval) int { return 0 })
	assert.Nil(t, off.Match("jayaruh #441 w/ ap shave co g5c"))
}
