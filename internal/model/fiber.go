package model

import "strings"

// Fiber identifies the material a brush knot is made from.
type Fiber string

// Canonical fiber values.
const (
	FiberBadger    Fiber = "Badger"
	FiberBoar      Fiber = "Boar"
	FiberSynthetic Fiber = "Synthetic"
	FiberHorse     Fiber = "Horse"
	FiberMixed     Fiber = "Mixed"
	FiberUnknown   Fiber = ""
)

// fiberSynonyms maps lowercase keywords seen in the wild to canonical fibers.
// Multi-word keywords are listed before their single-word prefixes so the
// detector can scan the table in order.
var fiberSynonyms = []struct {
	keyword string
	fiber   Fiber
}{
	{"mixed badger", FiberMixed},
	{"badger/boar", FiberMixed},
	{"two band", FiberBadger},
	{"2 band", FiberBadger},
	{"three band", FiberBadger},
	{"3 band", FiberBadger},
	{"silvertip", FiberBadger},
	{"best badger", FiberBadger},
	{"pure badger", FiberBadger},
	{"super badger", FiberBadger},
	{"finest", FiberBadger},
	{"fanchurian", FiberBadger},
	{"badger", FiberBadger},
	{"shd", FiberBadger},
	{"manchurian", FiberBadger},
	{"boar", FiberBoar},
	{"bristle", FiberBoar},
	{"faux horse", FiberSynthetic},
	{"horsehair", FiberHorse},
	{"horse hair", FiberHorse},
	{"horse", FiberHorse},
	{"timberwolf", FiberSynthetic},
	{"tuxedo", FiberSynthetic},
	{"cashmere", FiberSynthetic},
	{"quartermoon", FiberSynthetic},
	{"plissoft", FiberSynthetic},
	{"motherlode", FiberSynthetic},
	{"synbad", FiberSynthetic},
	{"synthetic", FiberSynthetic},
	{"synth", FiberSynthetic},
	{"syn", FiberSynthetic},
	{"nylon", FiberSynthetic},
	{"g5a", FiberSynthetic},
	{"g5b", FiberSynthetic},
	{"g5c", FiberSynthetic},
	{"muhle stf", FiberSynthetic},
	{"stf", FiberSynthetic},
}

// DetectFiber scans text for a fiber keyword and returns the canonical
// fiber. Returns FiberUnknown when nothing in the synonym table appears.
func DetectFiber(text string) Fiber {
	lowered := strings.ToLower(text)
	for _, s := range fiberSynonyms {
		if strings.Contains(lowered, s.keyword) {
			return s.fiber
		}
	}
	return FiberUnknown
}

// ParseFiber normalizes a catalog-declared fiber string to a canonical
// value. Unlike DetectFiber it expects the whole string to name a fiber.
func ParseFiber(s string) Fiber {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "badger":
		return FiberBadger
	case "boar":
		return FiberBoar
	case "synthetic":
		return FiberSynthetic
	case "horse":
		return FiberHorse
	case "mixed":
		return FiberMixed
	case "":
		return FiberUnknown
	default:
		return DetectFiber(s)
	}
}
