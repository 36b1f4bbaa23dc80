// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	OCR struct {
		Language     string `mapstructure:"language" yaml:"language"`
		PageSegMode  int    `mapstructure:"page_seg_mode" yaml:"page_seg_mode"`
		DPI          int    `mapstructure:"dpi" yaml:"dpi"`
		Preprocess   bool   `mapstructure:"preprocess" yaml:"preprocess"`
		MaxImageSize int64  `mapstructure:"max_image_size" yaml:"max_image_size"`
	} `mapstructure:"ocr" yaml:"ocr"`

	Processing struct {
		Workers int `mapstructure:"workers" yaml:"workers"`
	} `mapstructure:"processing" yaml:"processing"`

	Categorization struct {
		Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
		CategoriesFile string `mapstructure:"categories_file" yaml:"categories_file"`
	} `mapstructure:"categorization" yaml:"categorization"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then SNAP_-prefixed environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.snap-transact")
	v.AddConfigPath(".snap-transact")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SNAP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars on a broken config file.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("ocr.language", "eng+vie")
	v.SetDefault("ocr.page_seg_mode", 6)
	v.SetDefault("ocr.dpi", 300)
	v.SetDefault("ocr.preprocess", true)
	v.SetDefault("ocr.max_image_size", 10_000_000)

	v.SetDefault("processing.workers", 4)

	v.SetDefault("categorization.enabled", true)
	v.SetDefault("categorization.categories_file", "categories.yaml")
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.OCR.Language == "" {
		return fmt.Errorf("ocr.language must not be empty")
	}

	if config.OCR.PageSegMode < 0 || config.OCR.PageSegMode > 13 {
		return fmt.Errorf("ocr.page_seg_mode must be between 0 and 13, got: %d", config.OCR.PageSegMode)
	}

	if config.OCR.MaxImageSize < 1 {
		return fmt.Errorf("ocr.max_image_size must be positive, got: %d", config.OCR.MaxImageSize)
	}

	if config.Processing.Workers < 1 || config.Processing.Workers > 64 {
		return fmt.Errorf("processing.workers must be between 1 and 64, got: %d", config.Processing.Workers)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
