// Package parsererror defines the typed errors surfaced by the recognition
// and file-handling layers. The extraction core itself never returns errors;
// missing fields are represented by absence, not failure.
package parsererror

import "fmt"

// RecognitionError represents a failure to run OCR over an image.
type RecognitionError struct {
	ImagePath string
	Stage     string // "load", "preprocess" or "recognize"
	Err       error
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("recognition failed for %s during %s: %v",
		e.ImagePath, e.Stage, e.Err)
}

func (e *RecognitionError) Unwrap() error {
	return e.Err
}

// ValidationError represents an input file that cannot be processed
// (missing, oversized, unsupported format or implausible dimensions).
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}
