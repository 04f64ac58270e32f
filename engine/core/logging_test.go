package core

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogReportsCallSite(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(os.Stderr)

	LogWarn("shape %s has no colour", "box")

	out := buf.String()
	assert.Contains(t, out, "shape box has no colour")
	assert.Contains(t, out, "logging_test.go")
	assert.NotContains(t, out, "logging.go:")
}

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel(" Debug ")
	assert.NoError(t, err)
	assert.Equal(t, DebugLevel, level)

	level, err = ParseLogLevel("")
	assert.NoError(t, err)
	assert.Equal(t, InfoLevel, level)

	_, err = ParseLogLevel("loud")
	assert.ErrorIs(t, err, ErrUnknownLogLevel)
}
