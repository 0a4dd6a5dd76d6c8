package geo

import (
	"strings"

	"golang.org/x/text/cases"
)

// folder performs Unicode case folding, which lowercases Cyrillic and Latin
// consistently (ЛЬВІВ → львів) where ASCII lowering would not.
var folder = cases.Fold()

// Normalize trims and case-folds a settlement name or query so that matching
// is case-insensitive across uk/ru/en spellings.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return folder.String(s)
}
