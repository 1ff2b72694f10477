package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInit_JSONEncoding(t *testing.T) {
	var buf bytes.Buffer
	l := Init(ZapConfig{
		Level:    LevelInfo,
		Mode:     ModeProduction,
		Encoding: EncodingJSON,
		Output:   zapcore.AddSync(&buf),
	})

	ctx := context.Background()
	l.Debugf(ctx, "hidden %d", 1)
	l.Infof(ctx, "visible %d", 2)
	require.NoError(t, l.Sync())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "visible 2", entry["MESSAGE"])
	assert.Equal(t, "info", entry["LEVEL"])
	assert.Equal(t, ServiceName, entry["NAME"])
}

func TestWith_AddsFields(t *testing.T) {
	var buf bytes.Buffer
	l := Init(ZapConfig{
		Level:    LevelDebug,
		Mode:     ModeProduction,
		Encoding: EncodingJSON,
		Output:   zapcore.AddSync(&buf),
	})

	l.With("request_id", "abc").Warn(context.Background(), "careful")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "abc", entry["request_id"])
	assert.Equal(t, "careful", entry["MESSAGE"])
}

func TestWithContext_PrefersRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	root := Init(ZapConfig{Level: LevelInfo, Mode: ModeProduction, Encoding: EncodingJSON, Output: zapcore.AddSync(&base)})
	child := Init(ZapConfig{Level: LevelInfo, Mode: ModeProduction, Encoding: EncodingJSON, Output: zapcore.AddSync(&scoped)})

	ctx := WithContext(context.Background(), child)
	root.Info(ctx, "routed")

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "routed")
}

func TestWithContext_KeepsCallerFields(t *testing.T) {
	var buf bytes.Buffer
	root := Init(ZapConfig{Level: LevelInfo, Mode: ModeProduction, Encoding: EncodingJSON, Output: zapcore.AddSync(&buf)})

	ctx := WithContext(context.Background(), root.With("user_id", "alice"))
	root.With("event", "denied").Warn(ctx, "routed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "alice", entry["user_id"])
	assert.Equal(t, "denied", entry["event"])
	assert.Equal(t, "routed", entry["MESSAGE"])
}

func TestUnknownLevelDefaultsToInfo(t *testing.T) {
	l := &zapLogger{cfg: ZapConfig{Level: "verbose"}}
	assert.Equal(t, zapcore.InfoLevel, l.level())
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	assert.NotPanics(t, func() {
		l.Info(context.Background(), "dropped")
		l.With("k", "v").Errorf(context.Background(), "dropped %s", "too")
	})
}
