// Package pipeline orchestrates the processing run: discover image files,
// recognize text, assemble transaction records, categorize them and write
// the resulting CSV.
package pipeline

import (
	"fmt"
	"sync"

	"snaptransact/internal/categorizer"
	"snaptransact/internal/common"
	"snaptransact/internal/extract"
	"snaptransact/internal/fileutils"
	"snaptransact/internal/logging"
	"snaptransact/internal/models"
	"snaptransact/internal/ocr"
)

// Processor wires the recognizer, the extraction engine and the optional
// categorizer into one processing run. The extraction engine is stateless,
// so a single Processor may fan work out across its worker pool freely.
type Processor struct {
	recognizer  ocr.Recognizer
	extractor   *extract.Extractor
	categorizer *categorizer.KeywordCategorizer
	workers     int
	logger      logging.Logger
}

// NewProcessor creates a Processor. categorizer may be nil to disable
// categorization; workers below 1 run sequentially.
func NewProcessor(
	recognizer ocr.Recognizer,
	extractor *extract.Extractor,
	keywordCategorizer *categorizer.KeywordCategorizer,
	workers int,
	logger logging.Logger,
) *Processor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		recognizer:  recognizer,
		extractor:   extractor,
		categorizer: keywordCategorizer,
		workers:     workers,
		logger:      logger,
	}
}

// ProcessImages recognizes and extracts transactions from all image files
// reachable from inputPath. Per-image failures are logged and counted, they
// never abort the run. Results are combined in input order regardless of
// which worker finished first.
func (p *Processor) ProcessImages(inputPath string) (models.ProcessingResult, error) {
	imageFiles, err := fileutils.ListImageFiles(inputPath, ocr.SupportedExtensions)
	if err != nil {
		return models.ProcessingResult{}, fmt.Errorf("discovering image files: %w", err)
	}
	if len(imageFiles) == 0 {
		p.logger.Warn("No supported image files found",
			logging.Field{Key: logging.FieldInputFile, Value: inputPath})
		return models.ProcessingResult{}, nil
	}

	p.logger.Info("Processing image files",
		logging.Field{Key: logging.FieldCount, Value: len(imageFiles)},
		logging.Field{Key: logging.FieldWorkers, Value: p.workers})

	type outcome struct {
		transactions []models.Transaction
		failed       bool
	}
	outcomes := make([]outcome, len(imageFiles))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				transactions, err := p.ProcessSingleImage(imageFiles[i])
				if err != nil {
					p.logger.WithError(err).Error("Failed to process image",
						logging.Field{Key: logging.FieldImage, Value: imageFiles[i]})
					outcomes[i] = outcome{failed: true}
					continue
				}
				outcomes[i] = outcome{transactions: transactions}
			}
		}()
	}
	for i := range imageFiles {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	result := models.ProcessingResult{}
	for _, o := range outcomes {
		if o.failed {
			result.FailedCount++
			continue
		}
		result.ProcessedCount++
		result.Transactions = append(result.Transactions, o.transactions...)
	}
	result.TransactionCount = len(result.Transactions)

	p.logger.Info("Processing complete",
		logging.Field{Key: "processed", Value: result.ProcessedCount},
		logging.Field{Key: "transactions", Value: result.TransactionCount},
		logging.Field{Key: "failed", Value: result.FailedCount})
	return result, nil
}

// ProcessSingleImage recognizes one image and assembles transactions from
// its text. The returned slice may be empty when the text holds no
// sufficient transaction evidence.
func (p *Processor) ProcessSingleImage(imagePath string) ([]models.Transaction, error) {
	text, confidence, err := p.recognizer.Recognize(imagePath)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("Recognized image",
		logging.Field{Key: logging.FieldImage, Value: imagePath},
		logging.Field{Key: logging.FieldCount, Value: len(text)},
		logging.Field{Key: logging.FieldConfidence, Value: confidence})

	transactions := p.extractor.Assemble(text, imagePath, confidence)
	if p.categorizer != nil {
		for i := range transactions {
			if category, ok := p.categorizer.Categorize(transactions[i].Description); ok {
				transactions[i].Category = category
			}
		}
	}
	return transactions, nil
}

// ProcessToCSV runs ProcessImages and writes the extracted transactions to
// outputPath. An empty result still produces a CSV with headers so the
// downstream contract is always satisfied.
func (p *Processor) ProcessToCSV(inputPath, outputPath string) (models.ProcessingResult, error) {
	result, err := p.ProcessImages(inputPath)
	if err != nil {
		return result, err
	}

	transactions := result.Transactions
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	if err := common.WriteTransactionsToCSV(transactions, outputPath); err != nil {
		return result, fmt.Errorf("writing transactions: %w", err)
	}
	return result, nil
}
