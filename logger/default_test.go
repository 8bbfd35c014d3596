package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_InitialLogger(t *testing.T) {
	log := Default()

	require.NotNil(t, log)
	assert.True(t, log.Enabled(InfoLevel))
	assert.False(t, log.Enabled(DebugLevel))
}

func TestDefault_SetAndGet(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	replacement := NewBuilder().WithHandler(&captureHandler{}).Build()
	SetDefault(replacement)

	assert.Same(t, replacement, Default())
}

func TestDefault_PackageFunctions(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	sink := &captureHandler{}
	SetDefault(NewBuilder().WithHandler(sink).Build())
	ctx := context.Background()

	Debug(ctx, "filtered at default level")
	Info(ctx, "info via package", Metadata{"k": 1})
	Warn(ctx, "warn via package")
	Error(ctx, "error via package", errors.New("boom"))
	Log(ctx, ErrorLevel, "explicit level")

	require.Len(t, sink.records, 4)
	assert.Equal(t, "info via package", sink.records[0].Message)
	assert.Equal(t, Metadata{"k": 1}, sink.records[0].Metadata)
	assert.Equal(t, "warn via package", sink.records[1].Message)
	require.NotNil(t, sink.records[2].Err)
	assert.Equal(t, "boom", sink.records[2].Err.Message)
	assert.Equal(t, "explicit level", sink.records[3].Message)
}

func TestDefault_Child(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	sink := &captureHandler{}
	SetDefault(NewBuilder().
		WithHandler(sink).
		WithDefaultMetadata(Metadata{"app": "svc"}).
		Build())

	Child(Metadata{"component": "auth"}).Info(context.Background(), "derived")

	require.Len(t, sink.records, 1)
	assert.Equal(t, Metadata{"app": "svc", "component": "auth"}, sink.records[0].Metadata)
}
