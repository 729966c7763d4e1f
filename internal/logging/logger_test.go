package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"bogus":   zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNew_JSONOutputCarriesComponentAndTarget(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "inspector")
	ctx = WithTarget(ctx, "core.1234")
	FromContext(ctx).Warn().Msg("executable missing")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "inspector", entry["component"])
	assert.Equal(t, "core.1234", entry["target"])
	assert.Equal(t, "executable missing", entry["message"])
}

func TestFromContext_WithoutLoggerIsDisabled(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestRecoverPanic_LogsAndRepanics(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Format: "json", Output: &buf})

	assert.PanicsWithValue(t, "boom", func() {
		defer RecoverPanic(logger)
		panic("boom")
	})
	assert.Contains(t, buf.String(), `"panic":"boom"`)
}
