// Package catalog loads brand/model pattern catalogs and compiles every
// pattern once, at initialization, into ready-to-run matchers.
package catalog

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nmrs/sotd-pipeline-sub011/internal/common"
	"github.com/nmrs/sotd-pipeline-sub011/internal/model"
)

// rawModel is one model variant under a brand in catalog YAML.
type rawModel struct {
	KnotSizeMM *float64 `yaml:"knot_size_mm"`
	Model      string   `yaml:"model"`
	Fiber      string   `yaml:"fiber"`
	Patterns   []string `yaml:"patterns"`
}

// rawBrand is one brand record in catalog YAML. Brand-level fiber and
// knot size are defaults inherited by models that do not declare their
// own.
type rawBrand struct {
	KnotSizeMM *float64   `yaml:"knot_size_mm"`
	Brand      string     `yaml:"brand"`
	Fiber      string     `yaml:"fiber"`
	Patterns   []string   `yaml:"patterns"`
	Models     []rawModel `yaml:"models"`
}

type rawFile struct {
	Brands []rawBrand `yaml:"brands"`
}

// Entry is one compiled (brand, model, pattern) tuple. Model is empty
// for brand-level entries. Source preserves the pattern text for
// provenance reporting.
type Entry struct {
	Pattern    *regexp.Regexp
	KnotSizeMM *float64
	Brand      string
	Model      string
	Source     string
	Fiber      model.Fiber
}

// Catalog holds the compiled entries of one catalog file in priority
// order. All model-level entries precede all brand-level entries, so a
// maker's loose pattern can never mask a specific model; within a level,
// declaration order is priority order. Catalogs are immutable after
// load.
type Catalog struct {
	File    string
	Entries []Entry
}

// Load reads and compiles a catalog YAML file. Any structural problem or
// uncompilable pattern aborts the load with file/brand/model context;
// broken records are never skipped.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var raw rawFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, common.NewCatalogError(path, "", "", "", fmt.Errorf("%w: %v", common.ErrCatalogMalformed, err))
	}

	return Compile(path, raw.Brands)
}

// Compile turns raw brand records into a Catalog, validating as it goes.
func Compile(file string, brands []rawBrand) (*Catalog, error) {
	c := &Catalog{File: file}

	var modelEntries, brandEntries []Entry
	for _, b := range brands {
		if strings.TrimSpace(b.Brand) == "" {
			return nil, common.NewCatalogError(file, "", "", "", fmt.Errorf("%w: brand name is empty", common.ErrCatalogMalformed))
		}
		brandFiber := model.ParseFiber(b.Fiber)

		for _, m := range b.Models {
			if strings.TrimSpace(m.Model) == "" {
				return nil, common.NewCatalogError(file, b.Brand, "", "", fmt.Errorf("%w: model name is empty", common.ErrCatalogMalformed))
			}
			if len(m.Patterns) == 0 {
				return nil, common.NewCatalogError(file, b.Brand, m.Model, "", fmt.Errorf("%w: model declares no patterns", common.ErrCatalogMalformed))
			}
			fiber := model.ParseFiber(m.Fiber)
			if fiber == model.FiberUnknown {
				fiber = brandFiber
			}
			size := m.KnotSizeMM
			if size == nil {
				size = b.KnotSizeMM
			}
			for _, p := range m.Patterns {
				re, err := compilePattern(p)
				if err != nil {
					return nil, common.NewCatalogError(file, b.Brand, m.Model, p, err)
				}
				modelEntries = append(modelEntries, Entry{
					Brand:      b.Brand,
					Model:      m.Model,
					Fiber:      fiber,
					KnotSizeMM: size,
					Pattern:    re,
					Source:     p,
				})
			}
		}

		for _, p := range b.Patterns {
			re, err := compilePattern(p)
			if err != nil {
				return nil, common.NewCatalogError(file, b.Brand, "", p, err)
			}
			brandEntries = append(brandEntries, Entry{
				Brand:      b.Brand,
				Fiber:      brandFiber,
				KnotSizeMM: b.KnotSizeMM,
				Pattern:    re,
				Source:     p,
			})
		}
	}

	c.Entries = append(modelEntries, brandEntries...)
	return c, nil
}

// compilePattern compiles a catalog pattern case-insensitively.
func compilePattern(p string) (*regexp.Regexp, error) {
	if strings.TrimSpace(p) == "" {
		return nil, fmt.Errorf("%w: empty pattern", common.ErrPatternInvalid)
	}
	if !strings.HasPrefix(p, "(?i)") {
		p = "(?i)" + p
	}
	re, err := regexp.Compile(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPatternInvalid, err)
	}
	return re, nil
}

// Match returns the first entry whose pattern matches the input, or nil.
func (c *Catalog) Match(input string) *Entry {
	for i := range c.Entries {
		if c.Entries[i].Pattern.MatchString(input) {
			return &c.Entries[i]
		}
	}
	return nil
}

// Len reports the number of compiled entries.
func (c *Catalog) Len() int {
	return len(c.Entries)
}
