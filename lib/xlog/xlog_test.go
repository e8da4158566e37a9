package xlog

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type memWriteSyncer struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (ws *memWriteSyncer) Write(p []byte) (int, error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.buf.Write(p)
}

func (ws *memWriteSyncer) Sync() error { return nil }

func (ws *memWriteSyncer) String() string {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.buf.String()
}

var _ zapcore.WriteSyncer = (*memWriteSyncer)(nil)

func TestXLoggerJSON(t *testing.T) {
	ws := &memWriteSyncer{}
	logger := NewXLogger(
		WithXLogLevel(LogLevelDebug),
		WithXLogEncoder(JSON),
		WithXLogWriter(ws),
		WithXLogName("xcollTest"),
	)

	logger.Info("tree rebuilt", zap.Int64("size", 42))
	logger.Debug("probe")
	logger.Warn("load factor high")
	logger.Error(errors.New("boom"), "release failed")
	logger.Logf(LogLevelInfo, "drained %d entries", 7)
	require.NoError(t, logger.Sync())

	out := ws.String()
	require.Contains(t, out, `"msg":"tree rebuilt"`)
	require.Contains(t, out, `"size":42`)
	require.Contains(t, out, `"component":"xcollTest"`)
	require.Contains(t, out, "boom")
	require.Contains(t, out, "drained 7 entries")
}

func TestXLoggerLevelGate(t *testing.T) {
	ws := &memWriteSyncer{}
	logger := NewXLogger(
		WithXLogLevel(LogLevelWarn),
		WithXLogEncoder(PlainText),
		WithXLogWriter(ws),
	)

	logger.Debug("invisible")
	logger.Info("invisible too")
	logger.Warn("visible")
	require.NoError(t, logger.Sync())

	out := ws.String()
	require.NotContains(t, out, "invisible")
	require.Contains(t, out, "visible")
}

func TestAntsXLogger(t *testing.T) {
	ws := &memWriteSyncer{}
	logger := NewXLogger(
		WithXLogLevel(LogLevelDebug),
		WithXLogWriter(ws),
	)

	antsLogger := NewAntsXLogger(logger)
	antsLogger.Printf("worker %d exits", 3)
	require.NoError(t, logger.Sync())
	require.Contains(t, ws.String(), "worker 3 exits")

	var nilLogger *AntsXLogger
	require.NotPanics(t, func() { nilLogger.Printf("dropped") })
}
