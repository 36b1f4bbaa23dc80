// Package extract implements the field-extraction heuristics engine that
// turns noisy OCR-recovered text into structured transaction records.
//
// Each field (date, amount, reference, description) is extracted by an
// ordered list of patterns evaluated in fixed priority order; the lists are
// explicit data structures so priority is visible and testable in isolation.
// The engine is pure and stateless per call: pattern tables are compiled
// once at construction time and never mutated, so a single Extractor may be
// shared across goroutines without coordination.
package extract

import (
	"strings"
	"unicode/utf8"

	"snaptransact/internal/logging"
	"snaptransact/internal/models"
)

// minTextLength is the minimum normalized rune count for text to be
// considered capable of containing transaction data.
const minTextLength = 10

// minDescriptionLength is the rune count a description must exceed to make
// a record sufficient on its own.
const minDescriptionLength = 5

// Extractor holds the precompiled pattern tables for all four field
// extractors. Construct it once with New and reuse it freely.
type Extractor struct {
	dates       []datePattern
	amounts     []amountPattern
	references  []referencePattern
	descLabels  []descriptionLabel
	lineFilters lineFilters
	logger      logging.Logger
}

// New builds an Extractor with all pattern tables compiled.
// A nil logger falls back to the process default.
func New(logger logging.Logger) *Extractor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Extractor{
		dates:       compileDatePatterns(),
		amounts:     compileAmountPatterns(),
		references:  compileReferencePatterns(),
		descLabels:  compileDescriptionLabels(),
		lineFilters: compileLineFilters(),
		logger:      logger,
	}
}

// Normalize trims leading and trailing whitespace from raw recognized text.
// No case changes or character substitutions happen here; the pattern
// tables are case-insensitive where needed.
func Normalize(raw string) string {
	return strings.TrimSpace(raw)
}

// Assemble runs the four field extractors independently over one blob of
// recognized text and applies the sufficiency policy. It returns zero or
// one freshly constructed transaction records; sourceFile and confidence
// are carried verbatim, no confidence computation happens here.
//
// A record is emitted only when an amount was found, or a description
// longer than five runes was found. A date or reference alone is judged
// too weak to constitute a transaction and is discarded.
func (e *Extractor) Assemble(text, sourceFile string, confidence float64) []models.Transaction {
	normalized := Normalize(text)
	if utf8.RuneCountInString(normalized) < minTextLength {
		e.logger.Debug("Text too short to contain transaction data",
			logging.Field{Key: logging.FieldSource, Value: sourceFile})
		return nil
	}

	date, hasDate := e.ExtractDate(normalized)
	amount, hasAmount := e.ExtractAmount(normalized)
	reference, _ := e.ExtractReference(normalized)
	description, hasDescription := e.ExtractDescription(normalized)

	sufficient := hasAmount ||
		(hasDescription && utf8.RuneCountInString(description) > minDescriptionLength)
	if !sufficient {
		e.logger.Debug("Insufficient evidence for a transaction record",
			logging.Field{Key: logging.FieldSource, Value: sourceFile})
		return nil
	}

	tx := models.Transaction{
		Description: description,
		Reference:   reference,
		SourceFile:  sourceFile,
		Confidence:  &confidence,
	}
	if hasDate {
		tx.Date = &date
	}
	if hasAmount {
		tx.Amount = &amount
	}

	e.logger.Info("Assembled transaction record",
		logging.Field{Key: logging.FieldSource, Value: sourceFile},
		logging.Field{Key: logging.FieldConfidence, Value: confidence})
	return []models.Transaction{tx}
}
