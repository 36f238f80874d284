package usecase

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// normalizer applies full Unicode case mapping (e.g. "ß" upper-cases to "SS").
// A cases.Caser is stateful, so each operation builds its own normalizer.
type normalizer struct {
	upper cases.Caser
	lower cases.Caser
}

func newNormalizer() *normalizer {
	return &normalizer{
		upper: cases.Upper(language.Und),
		lower: cases.Lower(language.Und),
	}
}

// upperKey upper-cases and trims s; used by device-to-product resolution
func (n *normalizer) upperKey(s string) string {
	return strings.TrimSpace(n.upper.String(s))
}

// lowerKey lower-cases and trims s; used for free-text keywords
func (n *normalizer) lowerKey(s string) string {
	return strings.TrimSpace(n.lower.String(s))
}

// lowerText lower-cases catalog text without trimming it
func (n *normalizer) lowerText(s string) string {
	return n.lower.String(s)
}

// isBlank reports whether s is empty or whitespace only
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// bidirectionalMatch reports whether two normalized names are equal or one contains the other
func bidirectionalMatch(mobile, searchTerm string) bool {
	return mobile == searchTerm ||
		strings.Contains(mobile, searchTerm) ||
		strings.Contains(searchTerm, mobile)
}
