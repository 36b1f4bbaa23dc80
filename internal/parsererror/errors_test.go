package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecognitionError(t *testing.T) {
	cause := errors.New("engine unavailable")
	err := &RecognitionError{ImagePath: "scan.png", Stage: "recognize", Err: cause}

	assert.Contains(t, err.Error(), "scan.png")
	assert.Contains(t, err.Error(), "recognize")
	assert.ErrorIs(t, err, cause)
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{FilePath: "doc.txt", Reason: "unsupported image format"}

	assert.Contains(t, err.Error(), "doc.txt")
	assert.Contains(t, err.Error(), "unsupported image format")
}
