// Package correct implements the correct-match override store: exact
// curator-confirmed classifications that take precedence over all
// heuristic matching.
package correct

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nmrs/sotd-pipeline-sub011/internal/common"
	"github.com/nmrs/sotd-pipeline-sub011/internal/model"
)

// StrategyName tags outcomes served from the store, so downstream
// consumers can skip re-validating confirmed matches.
const StrategyName = "correct_matches"

type rawRef struct {
	Brand string `yaml:"brand"`
	Model string `yaml:"model"`
}

type rawComposite struct {
	Handle rawRef `yaml:"handle"`
	Knot   rawRef `yaml:"knot"`
}

// rawStore mirrors the three root sections of the correct-matches file.
type rawStore struct {
	Composite map[string]rawComposite        `yaml:"composite"`
	Handles   map[string]map[string][]string `yaml:"handles"`
	Knots     map[string]map[string][]string `yaml:"knots"`
}

type compositeEntry struct {
	handle model.ComponentRef
	knot   model.ComponentRef
}

// Store holds confirmed composite mappings plus the handle and knot
// component maps they reference. It is loaded once per run and read-only
// during matching; Confirm is only ever called by the out-of-band
// curation flow.
type Store struct {
	composite map[string]compositeEntry
	handles   map[string]map[string][]string
	knots     map[string]map[string][]string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		composite: make(map[string]compositeEntry),
		handles:   make(map[string]map[string][]string),
		knots:     make(map[string]map[string][]string),
	}
}

// Load reads a correct-matches YAML file and validates its referential
// integrity: every handle/knot reference named by a composite entry must
// resolve in the matching component section. Violations fail the load.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read correct matches: %w", err)
	}

	var raw rawStore
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse correct matches %s: %w", path, err)
	}

	s := NewStore()
	s.handles = raw.Handles
	if s.handles == nil {
		s.handles = make(map[string]map[string][]string)
	}
	s.knots = raw.Knots
	if s.knots == nil {
		s.knots = make(map[string]map[string][]string)
	}

	for input, entry := range raw.Composite {
		key := common.Normalize(input)
		if !hasComponent(s.handles, entry.Handle.Brand, entry.Handle.Model) {
			return nil, fmt.Errorf("%s: %q: %w: handle %s %s not present in handles section",
				path, input, common.ErrOverrideInconsistent, entry.Handle.Brand, entry.Handle.Model)
		}
		if !hasComponent(s.knots, entry.Knot.Brand, entry.Knot.Model) {
			return nil, fmt.Errorf("%s: %q: %w: knot %s %s not present in knots section",
				path, input, common.ErrOverrideInconsistent, entry.Knot.Brand, entry.Knot.Model)
		}
		s.composite[key] = compositeEntry{
			handle: model.ComponentRef{Brand: entry.Handle.Brand, Model: entry.Handle.Model},
			knot:   model.ComponentRef{Brand: entry.Knot.Brand, Model: entry.Knot.Model},
		}
	}

	return s, nil
}

func hasComponent(m map[string]map[string][]string, brand, mdl string) bool {
	models, ok := m[brand]
	if !ok {
		return false
	}
	_, ok = models[mdl]
	return ok
}

// Lookup returns the confirmed outcome for a normalized input string, or
// false when the string has no override. Read-only; safe to call for
// every classification.
func (s *Store) Lookup(normalized string) (model.Result, bool) {
	entry, ok := s.composite[normalized]
	if !ok {
		return model.NoMatch(), false
	}

	handle := model.Complete(entry.handle.Brand, entry.handle.Model, model.FiberUnknown, nil, StrategyName, "")
	knot := model.Complete(entry.knot.Brand, entry.knot.Model, model.FiberUnknown, nil, StrategyName, "")
	return model.Composite(handle, knot, StrategyName), true
}

// Len reports the number of confirmed composite mappings.
func (s *Store) Len() int {
	return len(s.composite)
}

// Confirm records a curator-confirmed composite classification. Existing
// component entries are reused (the same handle or knot shared across
// many composites is stored once); a prior mapping for the exact string
// is overwritten, last write wins.
func (s *Store) Confirm(input string, handle, knot model.ComponentRef) {
	s.addComponent(s.handles, handle)
	s.addComponent(s.knots, knot)

	s.composite[common.Normalize(input)] = compositeEntry{
		handle: model.ComponentRef{Brand: handle.Brand, Model: handle.Model},
		knot:   model.ComponentRef{Brand: knot.Brand, Model: knot.Model},
	}
}

func (s *Store) addComponent(m map[string]map[string][]string, ref model.ComponentRef) {
	models, ok := m[ref.Brand]
	if !ok {
		models = make(map[string][]string)
		m[ref.Brand] = models
	}
	sources, ok := models[ref.Model]
	if !ok {
		sources = []string{}
	}
	if ref.Source != "" {
		src := common.Normalize(ref.Source)
		seen := false
		for _, existing := range sources {
			if existing == src {
				seen = true
				break
			}
		}
		if !seen {
			sources = append(sources, src)
		}
	}
	models[ref.Model] = sources
}

// Save writes the store back to disk as YAML for the out-of-band
// curation flow.
func (s *Store) Save(path string) error {
	raw := rawStore{
		Composite: make(map[string]rawComposite, len(s.composite)),
		Handles:   s.handles,
		Knots:     s.knots,
	}
	for input, entry := range s.composite {
		raw.Composite[input] = rawComposite{
			Handle: rawRef{Brand: entry.handle.Brand, Model: entry.handle.Model},
			Knot:   rawRef{Brand: entry.knot.Brand, Model: entry.knot.Model},
		}
	}

	data, err := yaml.Marshal(&raw)
	if err != nil {
		return fmt.Errorf("failed to marshal correct matches: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write correct matches: %w", err)
	}
	return nil
}
