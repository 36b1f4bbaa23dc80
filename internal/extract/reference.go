package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"snaptransact/internal/logging"
)

// minReferenceLength is the minimum rune count for an acceptable code.
const minReferenceLength = 4

// referencePattern is one entry of the ordered reference pattern table.
type referencePattern struct {
	name string
	re   *regexp.Regexp
}

// The labeled pattern requires the captured code to contain a digit: real
// settlement codes always do, and without that constraint the "trans" label
// would capture word tails like "action" out of "Transaction".
func compileReferencePatterns() []referencePattern {
	return []referencePattern{
		{"labeled", regexp.MustCompile(`(?i)\b(?:reference|transaction|trans|ref|id|mã gd)[\s:]*([A-Z0-9]*\d[A-Z0-9]*)`)},
		{"atm", regexp.MustCompile(`(?i)\bATM[\s:]*([A-Z0-9]+)`)},
		{"ft", regexp.MustCompile(`(?i)\bFT[\s:]*([A-Z0-9]+)`)},
	}
}

// ExtractReference finds a transaction or settlement code in text.
// Patterns are tried in priority order and the first match wins; a match
// whose trimmed code is shorter than four runes abandons that pattern (not
// just that occurrence) and the next pattern is tried.
func (e *Extractor) ExtractReference(text string) (string, bool) {
	for _, p := range e.references {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		code := strings.TrimSpace(m[1])
		if utf8.RuneCountInString(code) < minReferenceLength {
			e.logger.Debug("Reference candidate too short",
				logging.Field{Key: logging.FieldPattern, Value: p.name},
				logging.Field{Key: logging.FieldValue, Value: code})
			continue
		}
		e.logger.Debug("Extracted reference",
			logging.Field{Key: logging.FieldPattern, Value: p.name},
			logging.Field{Key: logging.FieldValue, Value: code})
		return code, true
	}
	return "", false
}
