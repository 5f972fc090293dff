package common

import "strings"

// Normalize case-folds and whitespace-collapses an input string. The
// normalized form is the cache and override key, so cosmetic variations
// of the same submitted text share one entry.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
