// Package brush implements the brush matching engine: the prioritized
// strategy chain, the handle/knot splitter, and the fallback strategies
// that turn a normalized shave-report string into a structured match.
package brush

import (
	"github.com/nmrs/sotd-pipeline-sub011/internal/model"
)

// Strategy is one self-contained rule-matching unit. Match returns nil
// when the strategy does not recognize the input; strategies never
// return errors and never mutate shared state.
type Strategy interface {
	Name() string
	Match(input string) *model.Result
}

// Chain tries strategies in a fixed declared order and returns the first
// non-nil result. Order is semantic: a strategy recognizing fully
// qualified catalog products must precede looser maker-only or fallback
// strategies, or the specific product gets masked.
type Chain struct {
	strategies []Strategy
}

// NewChain builds a chain over the given strategies, in priority order.
func NewChain(strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies}
}

// Match runs the chain. First match wins; no strategy after the winner
// is consulted.
func (c *Chain) Match(input string) *model.Result {
	for _, s := range c.strategies {
		if res := s.Match(input); res != nil {
			return res
		}
	}
	return nil
}

// Names returns the strategy names in priority order.
func (c *Chain) Names() []string {
	names := make([]string, len(c.strategies))
	for i, s := range c.strategies {
		names[i] = s.Name()
	}
	return names
}
