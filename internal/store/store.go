// Package store provides loading and saving of category configuration data.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"snaptransact/internal/logging"
	"snaptransact/internal/models"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// CategoryStore manages loading and saving of category keyword mappings.
type CategoryStore struct {
	CategoriesFile string
}

// NewCategoryStore creates a new store for category data.
func NewCategoryStore(categoriesFile string) *CategoryStore {
	return &CategoryStore{CategoriesFile: categoriesFile}
}

// FindConfigFile looks for a configuration file in standard locations:
// the path itself when absolute, then the current directory, ./config,
// and ~/.config/snap-transact.
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "snap-transact", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// LoadCategories loads category keyword mappings from the YAML file.
// A missing file is not an error; it yields an empty mapping.
func (s *CategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("Categories file not found, categorization disabled",
				logging.Field{Key: logging.FieldInputFile, Value: filename})
			return []models.CategoryConfig{}, nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var wrapper struct {
		Categories []models.CategoryConfig `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}

	log.Debug("Loaded categories",
		logging.Field{Key: logging.FieldInputFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(wrapper.Categories)})
	return wrapper.Categories, nil
}

// SaveCategories writes category keyword mappings back to the YAML file.
func (s *CategoryStore) SaveCategories(categories []models.CategoryConfig) error {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	wrapper := struct {
		Categories []models.CategoryConfig `yaml:"categories"`
	}{Categories: categories}

	data, err := yaml.Marshal(&wrapper)
	if err != nil {
		return fmt.Errorf("error encoding categories: %w", err)
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}
	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("error writing categories file: %w", err)
	}

	log.Info("Saved categories",
		logging.Field{Key: logging.FieldOutputFile, Value: filename},
		logging.Field{Key: logging.FieldCount, Value: len(categories)})
	return nil
}
