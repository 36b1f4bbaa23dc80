package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"snaptransact/internal/logging"
)

// minLabeledLength is the rune count a labeled description must exceed.
const minLabeledLength = 3

// minLineLength is the minimum rune count for a fallback description line.
const minLineLength = 5

// descriptionLabel is one entry of the ordered description label table.
type descriptionLabel struct {
	name string
	re   *regexp.Regexp
}

func compileDescriptionLabels() []descriptionLabel {
	return []descriptionLabel{
		{"vietnamese", regexp.MustCompile(`(?i)(?:mo ta|mô tả|noi dung|nội dung)[\s:]*([^\n]+)`)},
		{"english", regexp.MustCompile(`(?i)(?:description|desc)[\s:]*([^\n]+)`)},
		{"remark", regexp.MustCompile(`(?i)(?:remark|note)[\s:]*([^\n]+)`)},
	}
}

// lineFilters holds the patterns that disqualify a line from serving as a
// fallback description, plus the trailing-clause cutter for labeled
// captures.
type lineFilters struct {
	dateLike    *regexp.Regexp
	verboseDate *regexp.Regexp
	amountLike  *regexp.Regexp
	code        *regexp.Regexp
	refClause   *regexp.Regexp
}

func compileLineFilters() lineFilters {
	return lineFilters{
		dateLike:    regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`),
		verboseDate: regexp.MustCompile(`(?i)ngày\s+\d{1,2}\s+tháng\s+\d{1,2}\s+năm\s+\d{4}`),
		amountLike:  regexp.MustCompile(`[\d.,]+\s*(?:VND|VNĐ|đ|\$)`),
		code:        regexp.MustCompile(`^[A-Z0-9]{6,}$`),
		refClause:   regexp.MustCompile(`(?i)\b(?:reference|transaction|trans|ref|mã gd)\b[\s:]*[A-Z0-9]*\d[A-Z0-9]*`),
	}
}

// ExtractDescription finds a free-text description. Stage A tries the
// labeled patterns in order, capturing the remainder of the labeled line;
// the capture is cut before any trailing reference clause so that
// run-together OCR lines do not leak codes into the description. When no
// label yields enough text, stage B falls back to the first line that does
// not look like a date, an amount, or a bare code.
func (e *Extractor) ExtractDescription(text string) (string, bool) {
	for _, label := range e.descLabels {
		m := label.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		captured := m[1]
		if loc := e.lineFilters.refClause.FindStringIndex(captured); loc != nil {
			captured = captured[:loc[0]]
		}
		captured = strings.TrimSpace(captured)
		if utf8.RuneCountInString(captured) > minLabeledLength {
			e.logger.Debug("Extracted labeled description",
				logging.Field{Key: logging.FieldPattern, Value: label.name},
				logging.Field{Key: logging.FieldValue, Value: captured})
			return captured, true
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if utf8.RuneCountInString(line) < minLineLength {
			continue
		}
		if e.lineFilters.dateLike.MatchString(line) ||
			e.lineFilters.verboseDate.MatchString(line) ||
			e.lineFilters.amountLike.MatchString(line) ||
			e.lineFilters.code.MatchString(line) {
			continue
		}
		e.logger.Debug("Using line as description",
			logging.Field{Key: logging.FieldValue, Value: line})
		return line, true
	}
	return "", false
}
