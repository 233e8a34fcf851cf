package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	old := Log
	Log = zap.New(core)
	t.Cleanup(func() { Log = old })
	return logs
}

func TestRedactedNeverLogsSecret(t *testing.T) {
	logs := observe(t)
	secret := []byte{0xde, 0xad, 0xbe, 0xef}

	Debug("key imported", Redacted("private_key", secret))

	entries := logs.All()
	require.Len(t, entries, 1)
	value := entries[0].ContextMap()["private_key"].(string)
	assert.Equal(t, "<redacted 4 bytes>", value)
	assert.NotContains(t, value, "deadbeef")
}

func TestPubKeyShortened(t *testing.T) {
	pub := make([]byte, 33)
	pub[0] = 0x02
	f := PubKey("public_key", pub)
	assert.Equal(t, "0200000000000000…", f.String)

	short := PubKey("public_key", []byte{0x01, 0x02})
	assert.Equal(t, "0102", short.String)
}

func TestComponentUsesCurrentLogger(t *testing.T) {
	logs := observe(t)

	Component("kms").Info("ready")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "kms", entries[0].ContextMap()["component"])
	assert.True(t, strings.HasPrefix(entries[0].Message, "ready"))
}
