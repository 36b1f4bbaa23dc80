package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"snaptransact/internal/logging"
)

// datePattern is one entry of the ordered date pattern table. Every pattern
// captures exactly three numeric groups; field order is decided
// structurally by resolveDate, not by pattern identity.
type datePattern struct {
	name string
	re   *regexp.Regexp
}

func compileDatePatterns() []datePattern {
	return []datePattern{
		{"dmy-4digit", regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{4})`)},
		{"dmy-2digit", regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{2})`)},
		{"iso", regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`)},
		{"dotted", regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\.(\d{4})`)},
		{"vietnamese", regexp.MustCompile(`(?i)ngày\s+(\d{1,2})\s+tháng\s+(\d{1,2})\s+năm\s+(\d{4})`)},
	}
}

// ExtractDate finds a calendar date in text. Patterns are tried in priority
// order; the first one that both matches and parses to a valid calendar
// date wins. An invalid date (month 13, February 30) abandons that pattern
// and the next one is tried.
func (e *Extractor) ExtractDate(text string) (time.Time, bool) {
	for _, p := range e.dates {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		date, ok := resolveDate(m[0], m[1], m[2], m[3])
		if !ok {
			e.logger.Debug("Matched date candidate is not a valid calendar date",
				logging.Field{Key: logging.FieldPattern, Value: p.name},
				logging.Field{Key: logging.FieldValue, Value: m[0]})
			continue
		}
		e.logger.Debug("Extracted date",
			logging.Field{Key: logging.FieldPattern, Value: p.name},
			logging.Field{Key: logging.FieldValue, Value: date.Format("2006-01-02")})
		return date, true
	}
	return time.Time{}, false
}

// resolveDate decides the field order of three numeric groups by structural
// cues: a 4-digit first group means year-month-day, the Vietnamese "tháng"
// marker means day-month-year explicitly, anything else defaults to
// day-month-year with two-digit years mapped below 50 to the 2000s.
func resolveDate(matched, g1, g2, g3 string) (time.Time, bool) {
	a, err1 := strconv.Atoi(g1)
	b, err2 := strconv.Atoi(g2)
	c, err3 := strconv.Atoi(g3)
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}

	var year, month, day int
	switch {
	case len(g1) == 4:
		year, month, day = a, b, c
	case strings.Contains(strings.ToLower(matched), "tháng"):
		day, month, year = a, b, c
	default:
		day, month, year = a, b, c
		if year < 100 {
			if year < 50 {
				year += 2000
			} else {
				year += 1900
			}
		}
	}

	return makeValidDate(year, month, day)
}

// makeValidDate builds a date and verifies it round-trips, rejecting values
// that time.Date would silently normalize (e.g. February 30).
func makeValidDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}
