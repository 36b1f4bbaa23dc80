// Package categorizer assigns categories to extracted transactions by
// matching keywords from the category store against their descriptions.
package categorizer

import (
	"strings"

	"snaptransact/internal/logging"
	"snaptransact/internal/models"
)

// KeywordCategorizer categorizes transactions using case-insensitive
// keyword matching against category configuration loaded from YAML.
type KeywordCategorizer struct {
	categories []models.CategoryConfig
	logger     logging.Logger
}

// NewKeywordCategorizer creates a categorizer over the given category
// mappings. A nil logger falls back to the process default.
func NewKeywordCategorizer(categories []models.CategoryConfig, logger logging.Logger) *KeywordCategorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &KeywordCategorizer{categories: categories, logger: logger}
}

// Categorize returns the category whose keyword first matches the
// description, and whether any matched. Matching is case-insensitive;
// categories and keywords are evaluated in configuration order so earlier
// entries take priority.
func (c *KeywordCategorizer) Categorize(description string) (string, bool) {
	if strings.TrimSpace(description) == "" {
		return "", false
	}

	haystack := strings.ToUpper(description)
	for _, category := range c.categories {
		for _, keyword := range category.Keywords {
			if keyword == "" {
				continue
			}
			if strings.Contains(haystack, strings.ToUpper(keyword)) {
				c.logger.Debug("Transaction categorized by keyword",
					logging.Field{Key: logging.FieldCategory, Value: category.Name},
					logging.Field{Key: logging.FieldValue, Value: keyword})
				return category.Name, true
			}
		}
	}
	return "", false
}
