package log

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var logPath string

// TestMain initializes the global logger once; Init is sync.Once-guarded so
// every test shares it.
func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "log-test")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	logPath = filepath.Join(tmpDir, "test.log")
	cleanup, err := Init(logPath)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	os.Exit(m.Run())
}

func readLogFile(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	return string(data)
}

func TestLog_WritesFormattedEntry(t *testing.T) {
	Info(CatInput, "mode changed", "from", "insert", "to", "normal")

	content := readLogFile(t)
	require.Contains(t, content, "[INFO] [input] mode changed from=insert to=normal")
}

func TestLog_Levels(t *testing.T) {
	Debug(CatUI, "debug entry")
	Warn(CatUI, "warn entry")
	Error(CatUI, "error entry")

	content := readLogFile(t)
	assert.Contains(t, content, "[DEBUG] [ui] debug entry")
	assert.Contains(t, content, "[WARN] [ui] warn entry")
	assert.Contains(t, content, "[ERROR] [ui] error entry")
}

func TestLog_ErrorErr(t *testing.T) {
	ErrorErr(CatDB, "query failed", os.ErrNotExist, "table", "history")

	content := readLogFile(t)
	assert.Contains(t, content, "query failed table=history error=file does not exist")
}

func TestLog_OddFieldCount(t *testing.T) {
	Info(CatConfig, "dangling field", "orphan")

	content := readLogFile(t)
	assert.Contains(t, content, "dangling field orphan=<missing>")
}

func TestLog_MinLevelFilters(t *testing.T) {
	SetMinLevel(LevelWarn)
	defer SetMinLevel(LevelDebug)

	Debug(CatUI, "suppressed by level")

	content := readLogFile(t)
	assert.NotContains(t, content, "suppressed by level")
}

func TestLog_DisabledDropsEntries(t *testing.T) {
	SetEnabled(false)
	defer SetEnabled(true)

	Info(CatUI, "suppressed by toggle")

	content := readLogFile(t)
	assert.NotContains(t, content, "suppressed by toggle")
}

func TestBuffer_RecentAndClear(t *testing.T) {
	ClearBuffer()
	Info(CatHistory, "first buffered")
	Info(CatHistory, "second buffered")

	recent := GetRecentLogs(10)
	require.Len(t, recent, 2)
	assert.Contains(t, recent[0], "first buffered")
	assert.Contains(t, recent[1], "second buffered")
	assert.False(t, strings.HasSuffix(recent[0], "\n"))

	recent = GetRecentLogs(1)
	require.Len(t, recent, 1)
	assert.Contains(t, recent[0], "second buffered")

	ClearBuffer()
	assert.Empty(t, GetRecentLogs(10))
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
}

func TestListener_ReceivesEntries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewListener(ctx)
	require.NotNil(t, listener)

	Info(CatApp, "published to listener")

	msg := listener.Listen()()
	event, ok := msg.(LogEvent)
	require.True(t, ok)
	assert.Contains(t, event.Payload, "published to listener")
}
