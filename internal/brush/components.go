package brush

import (
	"github.com/nmrs/sotd-pipeline-sub011/internal/catalog"
	"github.com/nmrs/sotd-pipeline-sub011/internal/model"
)

// HandleMatcher classifies the handle half of a composite against the
// handle catalog. Handle makers are frequently cataloged at the brand
// level only, so a match with an empty model is normal.
type HandleMatcher struct {
	catalog *catalog.Catalog
}

// NewHandleMatcher builds a matcher over the handle catalog.
func NewHandleMatcher(c *catalog.Catalog) *HandleMatcher {
	return &HandleMatcher{catalog: c}
}

// Name implements Strategy.
func (m *HandleMatcher) Name() string { return "handle_matching" }

// Match implements Strategy.
func (m *HandleMatcher) Match(input string) *model.Result {
	e := m.catalog.Match(input)
	if e == nil {
		return nil
	}
	res := model.Complete(e.Brand, e.Model, model.FiberUnknown, nil, m.Name(), e.Source)
	return &res
}

// KnotMatcher classifies the knot half of a composite against the knot
// catalog, carrying the catalog's declared fiber and knot size onto the
// outcome.
type KnotMatcher struct {
	catalog *catalog.Catalog
}

// NewKnotMatcher builds a matcher over the knot catalog.
func NewKnotMatcher(c *catalog.Catalog) *KnotMatcher {
	return &KnotMatcher{catalog: c}
}

// Name implements Strategy.
func (m *KnotMatcher) Name() string { return "knot_matching" }

// Match implements Strategy.
func (m *KnotMatcher) Match(input string) *model.Result {
	e := m.catalog.Match(input)
	if e == nil {
		return nil
	}
	fiber := e.Fiber
	if fiber == model.FiberUnknown {
		fiber = model.DetectFiber(input)
	}
	res := model.Complete(e.Brand, e.Model, fiber, e.KnotSizeMM, m.Name(), e.Source)
	return &res
}
