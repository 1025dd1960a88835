package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"require-checklist/pkg/log"
)

func TestRequestIDField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := log.NewWithCore(core)

	ctx := log.WithRequestID(context.Background(), "req-1")
	l.Infof(ctx, "Completed task list item: %s", "One")
	l.Warn(context.Background(), "plain")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, "Completed task list item: One", entries[0].Message)
	assert.Equal(t, "req-1", entries[0].ContextMap()[log.FieldRequestID])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.NotContains(t, entries[1].ContextMap(), log.FieldRequestID)
}

func TestRequestIDFromEmpty(t *testing.T) {
	assert.Equal(t, "", log.RequestIDFrom(context.Background()))
}

func TestInit(t *testing.T) {
	l := log.Init(log.ZapConfig{Level: "not-a-level", Mode: log.ModeProduction, Encoding: log.EncodingJSON})
	require.NotNil(t, l)
	l.Debug(context.Background(), "dropped at info level")

	l = log.Init(log.ZapConfig{Level: "debug", Encoding: log.EncodingConsole, ColorEnabled: true, OutputPaths: []string{"stderr"}})
	require.NotNil(t, l)
}
