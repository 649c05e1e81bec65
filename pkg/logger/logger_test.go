package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/yamlres/pkg/logger"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var rec map[string]any
		require.NoError(t, dec.Decode(&rec))
		records = append(records, rec)
	}
	return records
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("writes json at info by default", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.Debug("hidden")
		log.Info("shown", slog.Int("count", 2))

		records := decodeLines(t, &buf)
		require.Len(t, records, 1)
		assert.Equal(t, "shown", records[0]["msg"])
		assert.InDelta(t, 2, records[0]["count"], 0)
	})

	t.Run("level option enables debug", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))

		log.Debug("visible")

		records := decodeLines(t, &buf)
		require.Len(t, records, 1)
		assert.Equal(t, "DEBUG", records[0]["level"])
	})

	t.Run("nil output keeps default", func(t *testing.T) {
		t.Parallel()
		require.NotNil(t, logger.New(logger.WithOutput(nil)))
	})
}

func TestOperationExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithExtractors(logger.OperationExtractor(), nil),
	)

	ctx := logger.WithOperation(context.Background(), "export")
	log.InfoContext(ctx, "with operation")
	log.InfoContext(context.Background(), "without operation")

	records := decodeLines(t, &buf)
	require.Len(t, records, 2)
	assert.Equal(t, "export", records[0]["operation"])
	assert.NotContains(t, records[1], "operation")

	name, ok := logger.OperationFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "export", name)

	_, ok = logger.OperationFromContext(logger.WithOperation(context.Background(), ""))
	assert.False(t, ok)
}

func TestDecoratorKeepsExtractorsAcrossDerivedLoggers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithExtractors(logger.OperationExtractor()))
	derived := log.With(slog.String("component", "cli")).WithGroup("details")

	derived.InfoContext(logger.WithOperation(context.Background(), "check"), "done", slog.Int("languages", 2))

	records := decodeLines(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "cli", records[0]["component"])
	details, ok := records[0]["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "check", details["operation"])
	assert.InDelta(t, 2, details["languages"], 0)
}

func TestNewWithSentryWithoutDSN(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithSentry(logger.SentryConfig{}, logger.WithOutput(&buf))
	log.Warn("local only")

	records := decodeLines(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "WARN", records[0]["level"])
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	log.Error("discarded")
}
