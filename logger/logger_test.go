package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &record))

	return record
}

func TestLogger(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "test",
		JSON:      true,
		Output:    &buf,
	})

	Get().Info("default subsystem")
	assert.Equal(t, "test", lastRecord(t, &buf)["subsystem"])

	ctx := WithSubsystem(t.Context(), "overridden")
	Get(ctx).Info("overridden subsystem")
	assert.Equal(t, "overridden", lastRecord(t, &buf)["subsystem"])

	ctx = With(ctx, "ledger", "values")
	ctx = With(ctx, "n", 5)
	Get(ctx).Info("with values")

	record := lastRecord(t, &buf)
	assert.Equal(t, "values", record["ledger"])
	assert.InDelta(t, 5, record["n"], 0)

	//nolint:staticcheck // nil context is part of the contract
	Get(nil, ctx).Info("first non-nil context wins")
	assert.Equal(t, "overridden", lastRecord(t, &buf)["subsystem"])
}

func TestLogger_Muted(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{Subsystem: "test", JSON: true, Output: &buf})

	Get(WithMuted(t.Context(), true)).Error("should not appear")
	assert.Empty(t, buf.String())

	Get(WithMuted(t.Context(), false)).Error("should appear")
	assert.NotEmpty(t, buf.String())
}

func TestLogger_MinLevel(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{Subsystem: "test", JSON: true, MinLevel: slog.LevelWarn, Output: &buf})

	Get().Info("dropped")
	assert.Empty(t, buf.String())

	Get().Warn("kept")
	assert.Equal(t, "kept", lastRecord(t, &buf)["msg"])
}

func TestLegacy(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem:   "test",
		JSON:        true,
		MinLevel:    slog.LevelDebug,
		LegacyLevel: slog.LevelInfo,
		Output:      &buf,
	})

	log.Println("legacy line")
	assert.Equal(t, "legacy line", lastRecord(t, &buf)["msg"])
}

func TestConfigureLogging_FromEnv(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	t.Setenv("LOG_JSON", "true")
	t.Setenv("LOG_LEVEL", "debug")

	logger := ConfigureLogging("tofu-test", WithOutput(&buf))
	logger.Debug("debug enabled")

	record := lastRecord(t, &buf)
	assert.Equal(t, "debug enabled", record["msg"])
	assert.Equal(t, "tofu-test", GetSubsystem(context.Background()))
}
