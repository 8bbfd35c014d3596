package handler

import (
	"maps"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/ctxlog/core"
)

// ZapHandler forwards records to a zap.Logger, for applications that
// already run a zap pipeline and want both producers writing through
// the same cores.
type ZapHandler struct {
	l *zap.Logger
}

// NewZapHandler wraps l. The caller keeps ownership of the logger's
// sinks; Close only flushes them.
func NewZapHandler(l *zap.Logger) *ZapHandler {
	return &ZapHandler{l: l}
}

// Handle writes the record through the zap logger, carrying scope
// fields, metadata and error detail as zap fields.
func (h *ZapHandler) Handle(r *core.Record) error {
	ce := h.l.Check(zapLevel(r.Level), r.Message)
	if ce == nil {
		return nil
	}

	fields := make([]zap.Field, 0, len(r.Metadata)+4)
	if r.TraceID != "" {
		fields = append(fields, zap.String("traceId", r.TraceID))
	}
	if r.RequestID != "" {
		fields = append(fields, zap.String("requestId", r.RequestID))
	}
	if r.UserID != "" {
		fields = append(fields, zap.String("userId", r.UserID))
	}
	for k, v := range r.Metadata {
		fields = append(fields, zap.Any(k, v))
	}
	if r.Err != nil {
		fields = append(fields, zap.Any(core.ErrorKey, errorDetailMap(r.Err)))
	}

	ce.Time = r.Time
	ce.Write(fields...)
	return nil
}

// Close flushes the zap logger's buffered output.
func (h *ZapHandler) Close() error {
	return h.l.Sync()
}

func errorDetailMap(d *core.ErrorDetail) map[string]any {
	m := make(map[string]any, len(d.Extra)+3)
	maps.Copy(m, d.Extra)
	m["message"] = d.Message
	if d.Name != "" {
		m["name"] = d.Name
	}
	if d.Stack != "" {
		m["stack"] = d.Stack
	}
	return m
}

func zapLevel(l core.Level) zapcore.Level {
	switch l {
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
