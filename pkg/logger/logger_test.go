package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := New(path, "info")
	require.NoError(t, err)

	log.Info("booked barber=%s at %s", "b-1", "10:00")
	log.Debug("hidden %d", 1)
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "booked barber=b-1 at 10:00")
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}

func TestNewFromZap_FormatsMessages(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewFromZap(zap.New(core))

	log.Warn("slot %s taken", "09:30")
	log.Error("storage failed: %v", assert.AnError)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "slot 09:30 taken", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}
