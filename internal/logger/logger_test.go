package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestDebugSuppressedByDefault(t *testing.T) {
	t.Cleanup(reset)

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("hidden %d", 1)
	Info("hidden")
	Warn("hidden")
	Section("hidden")

	assert.Empty(t, buf.String())
}

func TestVerboseOutput(t *testing.T) {
	t.Cleanup(reset)

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("loaded %d phrases", 42)
	Info("index ready")
	Warn("optional source missing")
	Section("Ingestion")

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] loaded 42 phrases")
	assert.Contains(t, out, "[INFO] index ready")
	assert.Contains(t, out, "[WARN] optional source missing")
	assert.Contains(t, out, "=== Ingestion ===")
}

func TestErrorAlwaysPrinted(t *testing.T) {
	t.Cleanup(reset)

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Error("generation failed: %v", "boom")

	assert.Contains(t, buf.String(), "[ERROR] generation failed: boom")
}

func TestIsVerbose(t *testing.T) {
	t.Cleanup(reset)

	SetVerbose(true)
	assert.True(t, IsVerbose())
	SetVerbose(false)
	assert.False(t, IsVerbose())
}
