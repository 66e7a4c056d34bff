package logger

import (
	"testing"

	"github.com/invoicesystem/invoicesystem/internal/config"
	"github.com/invoicesystem/invoicesystem/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerLevel(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Logging.Level = types.LogLevelInfo

	log, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.False(t, log.Desugar().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Desugar().Core().Enabled(zapcore.InfoLevel))

	cfg.Logging.Level = types.LogLevelDebug
	log, err = NewLogger(cfg)
	require.NoError(t, err)
	assert.True(t, log.Desugar().Core().Enabled(zapcore.DebugLevel))
}

func TestDefaultLogger(t *testing.T) {
	require.NotNil(t, L)
	assert.NotNil(t, L.With("component", "test"))
	NewNopLogger().Infow("discarded", "k", "v")
}
