package ocr

import (
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"

	"snaptransact/internal/logging"
	"snaptransact/internal/parsererror"
)

// maxDimension bounds the longer side of an image handed to Tesseract.
const maxDimension = 2000

// minDimension is the smallest plausible side for a transaction screenshot.
const minDimension = 50

// TesseractRecognizer implements Recognizer on top of the Tesseract engine.
// A fresh gosseract client is created per invocation because the client is
// not safe for concurrent use; the recognizer itself therefore is.
type TesseractRecognizer struct {
	settings Settings
	logger   logging.Logger
}

// NewTesseractRecognizer creates a recognizer with the given settings.
// A nil logger falls back to the process default.
func NewTesseractRecognizer(settings Settings, logger logging.Logger) *TesseractRecognizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &TesseractRecognizer{settings: settings, logger: logger}
}

// Recognize validates, preprocesses and OCRs a single image. The returned
// confidence is the mean Tesseract word confidence scaled to [0,1]; when no
// word confidences are available it is 0.
func (r *TesseractRecognizer) Recognize(imagePath string) (string, float64, error) {
	if err := r.ValidateImage(imagePath); err != nil {
		return "", 0, err
	}

	img, err := imaging.Open(imagePath)
	if err != nil {
		return "", 0, &parsererror.RecognitionError{ImagePath: imagePath, Stage: "load", Err: err}
	}

	prepared := r.preprocess(img)

	// Tesseract reads from disk, so the prepared image goes through a
	// temp file rather than a pipe.
	tempFile, err := os.CreateTemp("", "snaptransact-*.png")
	if err != nil {
		return "", 0, &parsererror.RecognitionError{ImagePath: imagePath, Stage: "preprocess", Err: err}
	}
	tempPath := tempFile.Name()
	if err := tempFile.Close(); err != nil {
		r.logger.WithError(err).Warn("Failed to close temporary image file")
	}
	defer func() {
		if err := os.Remove(tempPath); err != nil {
			r.logger.WithError(err).Warn("Failed to remove temporary image file",
				logging.Field{Key: logging.FieldImage, Value: tempPath})
		}
	}()

	if err := imaging.Save(prepared, tempPath); err != nil {
		return "", 0, &parsererror.RecognitionError{ImagePath: imagePath, Stage: "preprocess", Err: err}
	}

	text, confidence, err := r.runTesseract(tempPath)
	if err != nil {
		return "", 0, &parsererror.RecognitionError{ImagePath: imagePath, Stage: "recognize", Err: err}
	}

	r.logger.Debug("Recognized text from image",
		logging.Field{Key: logging.FieldImage, Value: imagePath},
		logging.Field{Key: logging.FieldCount, Value: len(text)},
		logging.Field{Key: logging.FieldConfidence, Value: confidence})
	return strings.TrimSpace(text), confidence, nil
}

// preprocess applies the cleanup steps that improve OCR accuracy on phone
// screenshots: bounded size, grayscale, boosted contrast and sharpness.
func (r *TesseractRecognizer) preprocess(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() > maxDimension || bounds.Dy() > maxDimension {
		img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	}
	if !r.settings.Preprocess {
		return img
	}
	img = imaging.Grayscale(img)
	img = imaging.AdjustContrast(img, 20)
	img = imaging.Sharpen(img, 1.0)
	return img
}

func (r *TesseractRecognizer) runTesseract(imagePath string) (string, float64, error) {
	client := gosseract.NewClient()
	defer func() {
		if err := client.Close(); err != nil {
			r.logger.WithError(err).Warn("Failed to close tesseract client")
		}
	}()

	if err := client.SetLanguage(strings.Split(r.settings.Language, "+")...); err != nil {
		return "", 0, err
	}
	if err := client.SetPageSegMode(gosseract.PageSegMode(r.settings.PageSegMode)); err != nil {
		return "", 0, err
	}
	if r.settings.DPI > 0 {
		if err := client.SetVariable("user_defined_dpi", strconv.Itoa(r.settings.DPI)); err != nil {
			return "", 0, err
		}
	}
	if err := client.SetImage(imagePath); err != nil {
		return "", 0, err
	}

	text, err := client.Text()
	if err != nil {
		return "", 0, err
	}

	confidence := 0.0
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		r.logger.WithError(err).Warn("Could not read word confidences",
			logging.Field{Key: logging.FieldImage, Value: imagePath})
	} else if len(boxes) > 0 {
		var sum float64
		for _, box := range boxes {
			sum += box.Confidence
		}
		confidence = sum / float64(len(boxes)) / 100.0
		if confidence > 1 {
			confidence = 1
		}
		if confidence < 0 {
			confidence = 0
		}
	}

	return text, confidence, nil
}

// ValidateImage checks that a file is plausibly a processable image:
// it exists, is within the size limit, carries a supported extension and
// has both dimensions of at least 50 pixels.
func (r *TesseractRecognizer) ValidateImage(imagePath string) error {
	info, err := os.Stat(imagePath)
	if err != nil {
		return &parsererror.ValidationError{FilePath: imagePath, Reason: "file does not exist"}
	}
	if info.IsDir() {
		return &parsererror.ValidationError{FilePath: imagePath, Reason: "path is a directory"}
	}
	if r.settings.MaxImageSize > 0 && info.Size() > r.settings.MaxImageSize {
		return &parsererror.ValidationError{FilePath: imagePath, Reason: "file exceeds maximum size"}
	}
	if !IsSupportedExtension(imagePath) {
		return &parsererror.ValidationError{FilePath: imagePath, Reason: "unsupported image format"}
	}

	img, err := imaging.Open(imagePath)
	if err != nil {
		return &parsererror.ValidationError{FilePath: imagePath, Reason: "file is not a readable image"}
	}
	bounds := img.Bounds()
	if bounds.Dx() < minDimension || bounds.Dy() < minDimension {
		return &parsererror.ValidationError{FilePath: imagePath, Reason: "image dimensions too small"}
	}
	return nil
}

// IsSupportedExtension reports whether the file extension is one of the
// accepted image formats.
func IsSupportedExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}
