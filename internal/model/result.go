// Package model defines the core domain values shared across the matcher.
package model

import "fmt"

// ResultKind tags how a match outcome was produced.
type ResultKind string

// Result kinds.
const (
	// KindComplete is a single catalog product covering the whole input.
	KindComplete ResultKind = "COMPLETE"
	// KindComposite is a handle/knot pair resolved independently.
	KindComposite ResultKind = "COMPOSITE"
	// KindFallback is a best-effort entry synthesized from detected attributes.
	KindFallback ResultKind = "FALLBACK"
	// KindNoMatch means no rule consumed the input.
	KindNoMatch ResultKind = "NO_MATCH"
)

// FallbackBrand is the synthetic brand used for fallback matches.
const FallbackBrand = "Unspecified"

// Result is the outcome of classifying one input string. It is a pure
// value: it carries brand/model identifiers, never references into the
// catalogs that produced it.
type Result struct {
	Handle     *Result
	Knot       *Result
	KnotSizeMM *float64
	Brand      string
	Model      string
	Pattern    string
	Strategy   string
	Fiber      Fiber
	Kind       ResultKind
}

// NoMatch returns the sentinel outcome for an input no rule consumed.
func NoMatch() Result {
	return Result{Kind: KindNoMatch}
}

// Complete builds a complete-product outcome.
func Complete(brand, model string, fiber Fiber, knotSizeMM *float64, strategy, pattern string) Result {
	return Result{
		Kind:       KindComplete,
		Brand:      brand,
		Model:      model,
		Fiber:      fiber,
		KnotSizeMM: knotSizeMM,
		Strategy:   strategy,
		Pattern:    pattern,
	}
}

// Composite builds a handle/knot outcome from two sub-results.
func Composite(handle, knot Result, strategy string) Result {
	return Result{
		Kind:     KindComposite,
		Handle:   &handle,
		Knot:     &knot,
		Strategy: strategy,
	}
}

// Fallback builds an Unspecified-brand outcome from a detected attribute.
// Fallbacks never carry a numeric knot size; downstream enrichment owns
// that normalization.
func Fallback(model string, fiber Fiber, strategy string) Result {
	return Result{
		Kind:     KindFallback,
		Brand:    FallbackBrand,
		Model:    model,
		Fiber:    fiber,
		Strategy: strategy,
	}
}

// Matched reports whether the outcome identifies anything at all.
func (r Result) Matched() bool {
	return r.Kind != KindNoMatch
}

// String renders the outcome for logs and CLI summaries.
func (r Result) String() string {
	switch r.Kind {
	case KindComposite:
		return fmt.Sprintf("%s w/ %s", r.Handle.String(), r.Knot.String())
	case KindNoMatch:
		return "(no match)"
	default:
		if r.Model == "" {
			return r.Brand
		}
		return r.Brand + " " + r.Model
	}
}

// ComponentRef names a handle or knot component in the correct-match
// store. Source is the raw component text the curator confirmed; it may
// be empty when confirming from brand/model alone.
type ComponentRef struct {
	Brand  string
	Model  string
	Source string
}

func (c ComponentRef) String() string {
	if c.Model == "" {
		return c.Brand
	}
	return c.Brand + " " + c.Model
}
