package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"snaptransact/internal/logging"
)

// amountPattern is one entry of the ordered amount pattern table. The bare
// number fallback carries maskDates so that numeric fragments of already
// recognizable date expressions cannot masquerade as amounts; the
// currency-qualified patterns see the text untouched.
type amountPattern struct {
	name      string
	re        *regexp.Regexp
	maskDates bool
}

func compileAmountPatterns() []amountPattern {
	return []amountPattern{
		{"vnd-suffix", regexp.MustCompile(`(?i)([\d.,]+)\s*(?:VND|VNĐ|đ)`), false},
		{"symbol-prefix", regexp.MustCompile(`[$€£¥]\s*([\d.,]+)`), false},
		{"iso-suffix", regexp.MustCompile(`(?i)([\d.,]+)\s*(?:USD|EUR|GBP|JPY)`), false},
		// The leading guard keeps the fallback from scavenging digit runs
		// embedded in alphanumeric codes like REF123456.
		{"bare-number", regexp.MustCompile(`(?:^|[^A-Za-z0-9])[+-]?\s*([\d.,]+)`), true},
	}
}

// dateSpans matches the date expressions the bare number fallback must not
// scavenge digits from.
var dateSpans = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`),
	regexp.MustCompile(`\d{4}-\d{1,2}-\d{1,2}`),
	regexp.MustCompile(`(?i)ngày\s+\d{1,2}\s+tháng\s+\d{1,2}\s+năm\s+\d{4}`),
}

// ExtractAmount finds a monetary amount in text. Patterns are tried in
// priority order; within one pattern, matches are evaluated in order of
// appearance and the first candidate that normalizes to a strictly
// positive decimal wins. There is no default amount: absence means no
// pattern yielded a valid positive value.
func (e *Extractor) ExtractAmount(text string) (decimal.Decimal, bool) {
	for _, p := range e.amounts {
		haystack := text
		if p.maskDates {
			haystack = maskDateSpans(text)
		}
		for _, m := range p.re.FindAllStringSubmatch(haystack, -1) {
			candidate := normalizeAmount(m[1])
			amount, err := decimal.NewFromString(candidate)
			if err != nil {
				e.logger.Debug("Amount candidate failed to parse",
					logging.Field{Key: logging.FieldPattern, Value: p.name},
					logging.Field{Key: logging.FieldValue, Value: m[1]})
				continue
			}
			if !amount.IsPositive() {
				continue
			}
			e.logger.Debug("Extracted amount",
				logging.Field{Key: logging.FieldPattern, Value: p.name},
				logging.Field{Key: logging.FieldValue, Value: amount.String()})
			return amount, true
		}
	}
	return decimal.Decimal{}, false
}

// normalizeAmount resolves ambiguous thousands and decimal separators in a
// matched numeric substring:
//
//   - more than one dot: Vietnamese grouping, every dot is a thousands
//     separator and is stripped;
//   - a comma with at most two digits after its last occurrence: decimal
//     comma, remaining dots are stripped and the final comma becomes a dot;
//   - any other comma: thousands separator, stripped;
//   - no comma and a single dot followed by exactly three digits: Vietnamese
//     grouping again (250.000 reads as 250000, not 250);
//   - otherwise the string is left as-is, a single dot is a decimal point.
//
// The result may still fail decimal parsing (European 1.234.567,89 resolves
// to an unparseable string on purpose); the caller rejects those.
func normalizeAmount(s string) string {
	if strings.Count(s, ".") > 1 {
		return strings.ReplaceAll(s, ".", "")
	}
	if idx := strings.LastIndex(s, ","); idx >= 0 {
		if fraction := s[idx+1:]; len(fraction) <= 2 {
			integer := strings.ReplaceAll(s[:idx], ".", "")
			return integer + "." + fraction
		}
		return strings.ReplaceAll(s, ",", "")
	}
	if idx := strings.Index(s, "."); idx >= 0 && len(s)-idx-1 == 3 {
		return strings.ReplaceAll(s, ".", "")
	}
	return s
}

// maskDateSpans blanks out date expressions so the bare number fallback
// cannot pick their fragments up as amounts.
func maskDateSpans(text string) string {
	for _, re := range dateSpans {
		text = re.ReplaceAllLiteralString(text, " ")
	}
	return text
}
