package brush

import (
	"strings"

	"github.com/nmrs/sotd-pipeline-sub011/internal/model"
)

// splitDelimiters are the recognized composite markers, most unambiguous
// first. Order is fixed; it is part of the splitter's determinism
// contract.
var splitDelimiters = []string{
	" w/ ",
	" with ",
	" in ",
	" / ",
	"/",
	" - ",
}

// SplitEval describes one candidate partition for scoring. Matched flags
// reflect the handle/knot catalog lookups already performed by the
// splitter; the scorer never re-runs them.
type SplitEval struct {
	HandleText  string
	KnotText    string
	HandleMatch bool
	KnotMatch   bool
}

// Scorer ranks a candidate partition. Higher is better; candidates below
// the splitter's threshold are rejected. The scoring policy is pluggable
// — the only hard rule, enforced by the splitter itself, is that a split
// matching both halves beats one leaving a half unmatched.
type Scorer func(SplitEval) int

// Default scoring weights. A catalog hit dominates; fiber and size
// tokens strengthen a knot half, the word "handle" strengthens a handle
// half ("Mozingo handle" and friends).
const (
	scoreCatalogHit  = 30
	scoreFiberToken  = 12
	scoreSizeToken   = 8
	scoreHandleToken = 10
	scoreThreshold   = 20
)

// DefaultScorer is the scoring policy used when none is supplied.
func DefaultScorer(e SplitEval) int {
	score := 0
	if e.HandleMatch {
		score += scoreCatalogHit
	}
	if e.KnotMatch {
		score += scoreCatalogHit
	}
	if model.DetectFiber(e.KnotText) != model.FiberUnknown {
		score += scoreFiberToken
	}
	if _, ok := ExtractKnotSize(e.KnotText); ok {
		score += scoreSizeToken
	}
	if strings.Contains(strings.ToLower(e.HandleText), "handle") {
		score += scoreHandleToken
	}
	return score
}

// Splitter decides whether a string denotes a composite brush and, if
// so, partitions it into a handle substring and a knot substring. Each
// half is then matched independently: the handle half against the handle
// catalog, the knot half against the knot catalog with the fiber and
// size fallbacks behind it.
type Splitter struct {
	handles *HandleMatcher
	knots   *KnotMatcher
	score   Scorer
}

// NewSplitter builds a splitter over the component matchers with the
// default scoring policy.
func NewSplitter(handles *HandleMatcher, knots *KnotMatcher) *Splitter {
	return NewSplitterWithScorer(handles, knots, DefaultScorer)
}

// NewSplitterWithScorer builds a splitter with a custom scoring policy.
func NewSplitterWithScorer(handles *HandleMatcher, knots *KnotMatcher, score Scorer) *Splitter {
	return &Splitter{handles: handles, knots: knots, score: score}
}

// Name implements Strategy.
func (s *Splitter) Name() string { return "split" }

type splitCandidate struct {
	handleText string
	knotText   string
	handleRes  *model.Result
	knotRes    *model.Result
	score      int
}

func (c splitCandidate) bothMatched() bool {
	return c.handleRes != nil && c.knotRes != nil
}

// better reports whether a beats b. Both-halves-matched wins first, then
// strictly greater score; ties keep the earlier candidate, which keeps
// the sweep deterministic.
func better(a, b splitCandidate) bool {
	if a.bothMatched() != b.bothMatched() {
		return a.bothMatched()
	}
	return a.score > b.score
}

// Match implements Strategy. A single linear sweep over delimiter
// occurrences evaluates each candidate split point once, in both
// orientations ("handle w/ knot" and "knot in handle" both occur in the
// wild). No candidate is ever re-scored. A best candidate below the
// threshold means the input is not a composite and nil is returned.
func (s *Splitter) Match(input string) *model.Result {
	var best splitCandidate
	found := false

	for _, delim := range splitDelimiters {
		offset := 0
		for {
			idx := strings.Index(input[offset:], delim)
			if idx < 0 {
				break
			}
			pos := offset + idx
			left := strings.TrimSpace(input[:pos])
			right := strings.TrimSpace(input[pos+len(delim):])
			offset = pos + len(delim)

			if left == "" || right == "" {
				continue
			}

			for _, cand := range []splitCandidate{
				s.evaluate(left, right),
				s.evaluate(right, left),
			} {
				if !found || better(cand, best) {
					best = cand
					found = true
				}
			}
		}
	}

	if !found || best.score < scoreThreshold {
		return nil
	}

	handle := model.NoMatch()
	if best.handleRes != nil {
		handle = *best.handleRes
	}
	knot := s.resolveKnot(best)
	res := model.Composite(handle, knot, s.Name())
	return &res
}

// evaluate scores one (handle, knot) orientation of a split point,
// keeping the catalog results so the chosen candidate is not re-matched.
func (s *Splitter) evaluate(handleText, knotText string) splitCandidate {
	cand := splitCandidate{
		handleText: handleText,
		knotText:   knotText,
		handleRes:  s.handles.Match(handleText),
		knotRes:    s.knots.Match(knotText),
	}
	cand.score = s.score(SplitEval{
		HandleText:  handleText,
		KnotText:    knotText,
		HandleMatch: cand.handleRes != nil,
		KnotMatch:   cand.knotRes != nil,
	})
	return cand
}

// resolveKnot finishes the knot half: catalog result if the sweep found
// one, otherwise the fiber fallback, then the size fallback.
func (s *Splitter) resolveKnot(cand splitCandidate) model.Result {
	if cand.knotRes != nil {
		return *cand.knotRes
	}
	if res := (FiberFallbackStrategy{}).Match(cand.knotText); res != nil {
		return *res
	}
	if res := (SizeFallbackStrategy{}).Match(cand.knotText); res != nil {
		return *res
	}
	return model.NoMatch()
}
