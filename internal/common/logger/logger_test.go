// internal/common/logger/logger_test.go
package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapAdapter_EmitsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapAdapter(zap.New(core))

	log.Debug("resolving selection", map[string]interface{}{"rooms": 3})
	log.Info("estimate computed", nil)
	log.Warn("stale catalog reference", map[string]interface{}{"itemId": "chair"})
	log.Error("rules document rejected", nil)

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "resolving selection", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, "chair", entries[2].ContextMap()["itemId"])
}

func TestZapAdapter_WithFieldsAndWithError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapAdapter(zap.New(core))

	log.WithFields(map[string]interface{}{"ruleId": "large-12"}).Info("rule matched", nil)
	log.WithError(errors.New("no such file")).Error("catalog load failed", map[string]interface{}{"path": "x.json"})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "large-12", entries[0].ContextMap()["ruleId"])
	assert.Contains(t, entries[1].ContextMap(), "error")
	assert.Equal(t, "x.json", entries[1].ContextMap()["path"])
}

func TestNewStructured(t *testing.T) {
	log := NewStructured("debug", "json")
	require.NotNil(t, log)

	// Smoke the level switch; unknown levels fall back to info.
	assert.NotNil(t, New("warn", "console"))
	assert.NotNil(t, New("nonsense", "json"))
}

func TestNoOpLogger(t *testing.T) {
	log := NewNoOpLogger()
	log.Info("dropped", map[string]interface{}{"k": "v"})
	log.WithError(errors.New("ignored")).Error("dropped", nil)
}
