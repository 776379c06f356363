package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWritesInfoButNotDebugByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Debug("hidden detail")
	logger.Info("visible", "count", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden detail")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "count=2")
	assert.Contains(t, out, "ak")
}

func TestNewVerboseWritesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)

	logger.Debug("loaded accounts", "count", 3)

	assert.Contains(t, buf.String(), "loaded accounts")
}

func TestDiscardDropsEverything(t *testing.T) {
	logger := Discard()

	assert.NotPanics(t, func() { logger.Error("ignored") })
}
