package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestInitWithoutExporter(t *testing.T) {
	var buf bytes.Buffer
	obs, err := Init(context.Background(), Config{
		ServiceName: "tripsit-api",
		Environment: "test",
		LogLevel:    "info",
	}, &buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = obs.Shutdown(context.Background()) })

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.SplitN(buf.Bytes(), []byte("\n"), 2)[0], &line))
	assert.Equal(t, "Observability initialized", line["msg"])
	assert.Equal(t, "tripsit-api", line["service"])
	assert.Equal(t, false, line["otlp_enabled"])

	obs.Metrics.RecordOperationAttempt(context.Background(), "GetUser", "UserService")
	families, err := obs.Registry.Gather()
	require.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "tripsit_operation_attempts_total")

	_, span := obs.Tracer("test").Start(context.Background(), "op")
	assert.True(t, span.SpanContext().IsValid())
	span.End()
}

func TestNewLoggerTextFormat(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, "debug", "text").Debug("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNoop(t *testing.T) {
	obs := NewNoop()
	assert.NoError(t, obs.Shutdown(context.Background()))
	_, span := obs.Tracer("x").Start(context.Background(), "op")
	assert.False(t, span.SpanContext().IsValid())
}
