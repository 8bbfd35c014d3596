package handler

import (
	"bytes"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/ctxlog/core"
	"github.com/philipp01105/ctxlog/formatter"
)

func TestConsoleHandler_RoutesByLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Streams: map[core.Level]io.Writer{
			core.DebugLevel: &out,
			core.InfoLevel:  &out,
			core.WarnLevel:  &errOut,
			core.ErrorLevel: &errOut,
		},
	})
	defer h.Close()

	require.NoError(t, h.Handle(testRecord(core.DebugLevel, "dbg")))
	require.NoError(t, h.Handle(testRecord(core.InfoLevel, "inf")))
	require.NoError(t, h.Handle(testRecord(core.WarnLevel, "wrn")))
	require.NoError(t, h.Handle(testRecord(core.ErrorLevel, "err")))

	assert.Contains(t, out.String(), `"message":"dbg"`)
	assert.Contains(t, out.String(), `"message":"inf"`)
	assert.NotContains(t, out.String(), `"message":"wrn"`)
	assert.Contains(t, errOut.String(), `"message":"wrn"`)
	assert.Contains(t, errOut.String(), `"message":"err"`)
}

func TestConsoleHandler_FallbackStream(t *testing.T) {
	var out, fallback bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Streams:  map[core.Level]io.Writer{core.InfoLevel: &out},
		Fallback: &fallback,
	})
	defer h.Close()

	require.NoError(t, h.Handle(testRecord(core.InfoLevel, "routed")))
	require.NoError(t, h.Handle(testRecord(core.ErrorLevel, "unrouted")))

	assert.Contains(t, out.String(), `"message":"routed"`)
	assert.Contains(t, fallback.String(), `"message":"unrouted"`)
}

func TestConsoleHandler_CustomFormatter(t *testing.T) {
	var out bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
		Streams:   map[core.Level]io.Writer{core.InfoLevel: &out},
	})
	defer h.Close()

	require.NoError(t, h.Handle(testRecord(core.InfoLevel, "plain text")))

	assert.Contains(t, out.String(), "[INFO] plain text")
}

func TestConsoleHandler_FormatterError(t *testing.T) {
	var fallback bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Fallback: &fallback, Streams: map[core.Level]io.Writer{}})
	defer h.Close()

	r := core.NewRecord(time.Now(), core.InfoLevel, "x",
		core.Metadata{"ch": make(chan int)}, core.Scope{}, false)

	assert.Error(t, h.Handle(r))
}

func TestDefaultStreams(t *testing.T) {
	streams := DefaultStreams()

	assert.Equal(t, os.Stdout, streams[core.DebugLevel])
	assert.Equal(t, os.Stdout, streams[core.InfoLevel])
	assert.Equal(t, os.Stderr, streams[core.WarnLevel])
	assert.Equal(t, os.Stderr, streams[core.ErrorLevel])
}

func TestConsoleHandler_CloseIsNoop(t *testing.T) {
	h := NewConsoleHandler(ConsoleConfig{})

	assert.NoError(t, h.Close())
	assert.NoError(t, h.Close())
}
