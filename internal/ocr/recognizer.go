// Package ocr provides image validation, preprocessing and Tesseract-backed
// text recognition. The rest of the application consumes it only through
// the Recognizer contract: given an image, return best-effort text and a
// scalar confidence in [0,1].
package ocr

// Recognizer extracts text from an image file.
//
// Implementations return the recognized text, a confidence score in [0,1]
// and an error of type *parsererror.RecognitionError when the image cannot
// be processed.
type Recognizer interface {
	Recognize(imagePath string) (text string, confidence float64, err error)
}

// Settings configures the recognition engine.
type Settings struct {
	Language     string // Tesseract language codes, e.g. "eng+vie"
	PageSegMode  int    // Tesseract page segmentation mode
	DPI          int    // DPI hint for images without density metadata
	Preprocess   bool   // enable grayscale/contrast/sharpen preprocessing
	MaxImageSize int64  // maximum input file size in bytes
}

// DefaultSettings returns the recognition defaults used when no
// configuration overrides them.
func DefaultSettings() Settings {
	return Settings{
		Language:     "eng+vie",
		PageSegMode:  6,
		DPI:          300,
		Preprocess:   true,
		MaxImageSize: 10_000_000,
	}
}

// SupportedExtensions lists the image formats accepted for recognition,
// lowercase with leading dot.
var SupportedExtensions = []string{".png", ".jpg", ".jpeg", ".tiff", ".bmp"}
