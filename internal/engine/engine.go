// Package engine wires the override store, strategy chain, splitter,
// and result cache into the single classify entry point consumed by the
// match phase.
package engine

import (
	"log/slog"

	"github.com/nmrs/sotd-pipeline-sub011/internal/brush"
	"github.com/nmrs/sotd-pipeline-sub011/internal/cache"
	"github.com/nmrs/sotd-pipeline-sub011/internal/catalog"
	"github.com/nmrs/sotd-pipeline-sub011/internal/common"
	"github.com/nmrs/sotd-pipeline-sub011/internal/correct"
	"github.com/nmrs/sotd-pipeline-sub011/internal/model"
)

// Catalogs is the immutable catalog context an engine matches against.
// It is constructed explicitly and passed in, never read from package
// globals, so engines over synthetic catalogs coexist in tests.
type Catalogs struct {
	Brushes *catalog.Catalog
	Handles *catalog.Catalog
	Knots   *catalog.Catalog
}

// Config holds engine tuning options.
type Config struct {
	CacheSize int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{CacheSize: cache.DefaultCapacity}
}

// Stats aggregates per-call observability counters. The orchestrator
// reads them after a batch; the engine itself only ever reports per-call
// outcomes.
type Stats struct {
	ByStrategy map[string]int
	Calls      int
	CacheHits  int
	Matched    int
	NoMatches  int
}

// Engine classifies free-text brush descriptions into structured match
// outcomes. Single-threaded, synchronous, batch use: nothing in the
// classify path suspends or performs I/O.
type Engine struct {
	overrides *correct.Store
	chain     *brush.Chain
	cache     *cache.LRU
	stats     Stats
}

// New builds an engine with the default configuration.
func New(catalogs Catalogs, overrides *correct.Store) *Engine {
	return NewWithConfig(catalogs, overrides, DefaultConfig())
}

// NewWithConfig builds an engine over the given catalogs and override
// store. The strategy chain order is fixed here: known model-level
// brushes, maker-only brushes, the composite splitter, then the fiber
// and size fallbacks.
func NewWithConfig(catalogs Catalogs, overrides *correct.Store, cfg Config) *Engine {
	handles := brush.NewHandleMatcher(catalogs.Handles)
	knots := brush.NewKnotMatcher(catalogs.Knots)

	chain := brush.NewChain(
		brush.NewKnownBrushStrategy(catalogs.Brushes),
		brush.NewOtherBrushesStrategy(catalogs.Brushes),
		brush.NewSplitter(handles, knots),
		brush.FiberFallbackStrategy{},
		brush.SizeFallbackStrategy{},
	)

	if overrides == nil {
		overrides = correct.NewStore()
	}

	return &Engine{
		overrides: overrides,
		chain:     chain,
		cache:     cache.NewLRU(cfg.CacheSize),
		stats:     Stats{ByStrategy: make(map[string]int)},
	}
}

// Classify turns a raw product description into a match outcome. The
// override store is consulted first and short-circuits all heuristics;
// otherwise the strategy chain runs. Outcomes, including no-match
// sentinels, are memoized by normalized input.
func (e *Engine) Classify(raw string) model.Result {
	e.stats.Calls++
	norm := common.Normalize(raw)

	if res, ok := e.cache.Get(norm); ok {
		e.stats.CacheHits++
		e.countOutcome(res, false)
		return res
	}

	res := e.compute(norm)
	e.cache.Put(norm, res)
	e.countOutcome(res, true)
	slog.Debug("classified input", "input", norm, "kind", res.Kind, "strategy", res.Strategy)

	return res
}

// countOutcome updates the counters. Match-rate counters cover every
// call; ByStrategy only counts computed outcomes, so cache hits leave
// strategy usage untouched.
func (e *Engine) countOutcome(res model.Result, computed bool) {
	if res.Matched() {
		e.stats.Matched++
		if computed {
			e.stats.ByStrategy[res.Strategy]++
		}
	} else {
		e.stats.NoMatches++
	}
}

func (e *Engine) compute(norm string) model.Result {
	if res, ok := e.overrides.Lookup(norm); ok {
		return res
	}
	if res := e.chain.Match(norm); res != nil {
		return *res
	}
	return model.NoMatch()
}

// Stats returns a copy of the engine's counters.
func (e *Engine) Stats() Stats {
	out := e.stats
	out.ByStrategy = make(map[string]int, len(e.stats.ByStrategy))
	for k, v := range e.stats.ByStrategy {
		out.ByStrategy[k] = v
	}
	return out
}
