package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newCapturedAdapter() (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return NewLogrusAdapterFromLogger(logger), buf
}

func TestAdapterLevels(t *testing.T) {
	log, buf := newCapturedAdapter()

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	out := buf.String()
	assert.Contains(t, out, "debug message")
	assert.Contains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
}

func TestAdapterFields(t *testing.T) {
	log, buf := newCapturedAdapter()

	log.Info("processing", Field{Key: "image_path", Value: "a.png"}, Field{Key: "count", Value: 3})

	out := buf.String()
	assert.Contains(t, out, "image_path=a.png")
	assert.Contains(t, out, "count=3")
}

func TestAdapterWithError(t *testing.T) {
	log, buf := newCapturedAdapter()

	log.WithError(errors.New("boom")).Error("failed")

	out := buf.String()
	assert.Contains(t, out, "error=boom")
	assert.Contains(t, out, "failed")
}

func TestAdapterWithFieldChaining(t *testing.T) {
	log, buf := newCapturedAdapter()

	derived := log.WithField("source", "scan.png").WithFields(Field{Key: "pattern", Value: "iso"})
	derived.Info("matched")

	out := buf.String()
	assert.Contains(t, out, "source=scan.png")
	assert.Contains(t, out, "pattern=iso")

	// The parent logger is unaffected by derived fields.
	buf.Reset()
	log.Info("plain")
	assert.NotContains(t, buf.String(), "source=scan.png")
}

func TestNewLogrusAdapterInvalidLevelFallsBack(t *testing.T) {
	log := NewLogrusAdapter("nonsense", "text")
	assert.NotNil(t, log)
}

func TestGetLoggerIsStable(t *testing.T) {
	assert.Equal(t, GetLogger(), GetLogger())
}
