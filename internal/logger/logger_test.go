package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AllLevelsAndFormats(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "bogus"} {
		for _, format := range []string{"json", "console"} {
			log := New(level, format)
			require.NotNil(t, log)
			log.Debug("debug message", nil)
			log.Info("info message", map[string]interface{}{"k": "v"})
		}
	}
}

func TestNop_ChainingIsSafe(t *testing.T) {
	log := NewNop()

	derived := log.WithFields(map[string]interface{}{"component": "test"}).
		WithError(errors.New("boom"))
	require.NotNil(t, derived)

	derived.Warn("warn message", nil)
	derived.Error("error message", map[string]interface{}{"n": 1})
}

func TestMapToZapFields_Empty(t *testing.T) {
	assert.Nil(t, mapToZapFields(nil))
	assert.Nil(t, mapToZapFields(map[string]interface{}{}))
	assert.Len(t, mapToZapFields(map[string]interface{}{"a": 1, "b": 2}), 2)
}
