// Package root contains the root command for the application
package root

import (
	"github.com/spf13/cobra"

	"snaptransact/internal/categorizer"
	"snaptransact/internal/common"
	"snaptransact/internal/config"
	"snaptransact/internal/extract"
	"snaptransact/internal/logging"
	"snaptransact/internal/models"
	"snaptransact/internal/ocr"
	"snaptransact/internal/pipeline"
	"snaptransact/internal/store"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input      string
	Output     string
	Categories string
	Verbose    bool
}

var (
	// Log is the shared logger instance for commands
	Log = logging.GetLogger()

	// AppConfig holds the resolved configuration after PersistentPreRun.
	AppConfig *config.Config

	// SharedFlags are accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "snap-transact",
		Short: "Extract structured transactions from receipt and statement photos.",
		Long: `snap-transact recognizes text in financial document images and extracts
structured transaction records (date, amount, description, reference) to CSV.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to snap-transact!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			AppConfig = cfg

			if SharedFlags.Verbose {
				cfg.Log.Level = "debug"
			}
			Log = logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
			logging.SetDefaultLogger(Log)

			common.SetLogger(Log)
			store.SetLogger(Log)

			common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input image file or directory")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Categories, "categories", "c", "", "Categories YAML file")
	Cmd.PersistentFlags().BoolVar(&SharedFlags.Verbose, "verbose", false, "Enable debug logging")
}

// NewProcessor builds the processing pipeline from the resolved
// configuration and shared flags.
func NewProcessor() *pipeline.Processor {
	settings := ocr.Settings{
		Language:     AppConfig.OCR.Language,
		PageSegMode:  AppConfig.OCR.PageSegMode,
		DPI:          AppConfig.OCR.DPI,
		Preprocess:   AppConfig.OCR.Preprocess,
		MaxImageSize: AppConfig.OCR.MaxImageSize,
	}
	recognizer := ocr.NewTesseractRecognizer(settings, Log)
	extractor := extract.New(Log)

	var keywordCategorizer *categorizer.KeywordCategorizer
	if AppConfig.Categorization.Enabled {
		keywordCategorizer = categorizer.NewKeywordCategorizer(loadCategories(), Log)
	}

	return pipeline.NewProcessor(recognizer, extractor, keywordCategorizer, AppConfig.Processing.Workers, Log)
}

func loadCategories() []models.CategoryConfig {
	categoriesFile := SharedFlags.Categories
	if categoriesFile == "" {
		categoriesFile = AppConfig.Categorization.CategoriesFile
	}

	categories, err := store.NewCategoryStore(categoriesFile).LoadCategories()
	if err != nil {
		Log.WithError(err).Warn("Failed to load categories, categorization disabled")
		return nil
	}
	return categories
}
