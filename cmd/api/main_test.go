package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		t.Run(env, func(t *testing.T) {
			logger, err := NewLogger(env, "warn")
			require.NoError(t, err)
			assert.False(t, logger.Desugar().Core().Enabled(zapcore.InfoLevel))
			assert.True(t, logger.Desugar().Core().Enabled(zapcore.ErrorLevel))
		})
	}
}

func TestNewLogger_BadLevel(t *testing.T) {
	_, err := NewLogger("development", "loud")
	assert.Error(t, err)
}
