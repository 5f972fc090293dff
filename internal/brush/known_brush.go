package brush

import (
	"github.com/nmrs/sotd-pipeline-sub011/internal/catalog"
	"github.com/nmrs/sotd-pipeline-sub011/internal/model"
)

// KnownBrushStrategy matches complete catalog brushes at the model
// level: fully qualified (brand, model) entries with their own patterns.
// It runs before every looser strategy in the chain.
type KnownBrushStrategy struct {
	entries []catalog.Entry
}

// NewKnownBrushStrategy builds the strategy from the model-level entries
// of the brush catalog, preserving compiler priority order.
func NewKnownBrushStrategy(c *catalog.Catalog) *KnownBrushStrategy {
	var entries []catalog.Entry
	for _, e := range c.Entries {
		if e.Model != "" {
			entries = append(entries, e)
		}
	}
	return &KnownBrushStrategy{entries: entries}
}

// Name implements Strategy.
func (s *KnownBrushStrategy) Name() string { return "known_brush" }

// Match implements Strategy.
func (s *KnownBrushStrategy) Match(input string) *model.Result {
	for i := range s.entries {
		e := &s.entries[i]
		if e.Pattern.MatchString(input) {
			res := model.Complete(e.Brand, e.Model, e.Fiber, e.KnotSizeMM, s.Name(), e.Source)
			return &res
		}
	}
	return nil
}

// OtherBrushesStrategy matches maker-name-only patterns: brand-level
// catalog entries that identify the maker but no specific model. The
// brand's declared default fiber becomes the model name, matching how
// curators catalog makers whose whole line shares one fiber.
type OtherBrushesStrategy struct {
	entries []catalog.Entry
}

// NewOtherBrushesStrategy builds the strategy from the brand-level
// entries of the brush catalog.
func NewOtherBrushesStrategy(c *catalog.Catalog) *OtherBrushesStrategy {
	var entries []catalog.Entry
	for _, e := range c.Entries {
		if e.Model == "" {
			entries = append(entries, e)
		}
	}
	return &OtherBrushesStrategy{entries: entries}
}

// Name implements Strategy.
func (s *OtherBrushesStrategy) Name() string { return "other_brushes" }

// Match implements Strategy.
func (s *OtherBrushesStrategy) Match(input string) *model.Result {
	for i := range s.entries {
		e := &s.entries[i]
		if !e.Pattern.MatchString(input) {
			continue
		}
		// Prefer a fiber detected in the input over the catalog default;
		// a maker's line can mix fibers.
		fiber := model.DetectFiber(input)
		if fiber == model.FiberUnknown {
			fiber = e.Fiber
		}
		mdl := string(fiber)
		res := model.Complete(e.Brand, mdl, fiber, e.KnotSizeMM, s.Name(), e.Source)
		return &res
	}
	return nil
}
