package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitLevels(t *testing.T) {
	tests := []struct {
		name         string
		environment  string
		debug        bool
		debugEnabled bool
	}{
		{"production default hides debug", "production", false, false},
		{"production with debug flag", "production", true, true},
		{"development default shows debug", "development", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", "")
			require.NoError(t, Init(tt.environment, tt.debug))
			assert.Equal(t, tt.debugEnabled, Log.Core().Enabled(zapcore.DebugLevel))
		})
	}
}
