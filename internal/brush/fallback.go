package brush

import (
	"regexp"
	"strings"

	"github.com/nmrs/sotd-pipeline-sub011/internal/model"
)

// FiberFallbackStrategy produces a generic entry from a detected fiber
// keyword when no catalog entry matched. It runs before the size
// fallback; fiber is the stronger signal.
type FiberFallbackStrategy struct{}

// Name implements Strategy.
func (FiberFallbackStrategy) Name() string { return "fiber_fallback" }

// Match implements Strategy.
func (FiberFallbackStrategy) Match(input string) *model.Result {
	fiber := model.DetectFiber(input)
	if fiber == model.FiberUnknown {
		return nil
	}
	res := model.Fallback(string(fiber), fiber, FiberFallbackStrategy{}.Name())
	return &res
}

var (
	// A number directly followed by a millimeter unit, optional space or
	// hyphen before the unit.
	knotSizeMMRe = regexp.MustCompile(`(\d{2}(?:\.\d+)?)[\s-]*mm\b`)
	// An NxM footprint like "28x50"; the first number is the diameter.
	knotFootprintRe = regexp.MustCompile(`\b(\d{2}(?:\.\d+)?)\s*[x×]\s*\d{2}`)
)

// ExtractKnotSize pulls a diameter token out of text: either an explicit
// "NN mm" or the first number of an NxM footprint. The returned string
// always carries the unit ("26mm"); it is never parsed to a number here,
// that normalization belongs to downstream enrichment.
func ExtractKnotSize(text string) (string, bool) {
	if m := knotSizeMMRe.FindStringSubmatch(text); m != nil {
		return m[1] + "mm", true
	}
	if m := knotFootprintRe.FindStringSubmatch(text); m != nil {
		return m[1] + "mm", true
	}
	return "", false
}

// SizeFallbackStrategy produces a generic entry from a detected knot
// diameter. It only ever runs after the fiber fallback returned nothing.
type SizeFallbackStrategy struct{}

// Name implements Strategy.
func (SizeFallbackStrategy) Name() string { return "size_fallback" }

// Match implements Strategy.
func (SizeFallbackStrategy) Match(input string) *model.Result {
	size, ok := ExtractKnotSize(strings.ToLower(input))
	if !ok {
		return nil
	}
	res := model.Fallback(size, model.FiberUnknown, SizeFallbackStrategy{}.Name())
	return &res
}
