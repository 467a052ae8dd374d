package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]struct {
		want zerolog.Level
		ok   bool
	}{
		"":         {zerolog.InfoLevel, false},
		"debug":    {zerolog.DebugLevel, true},
		" WARN ":   {zerolog.WarnLevel, true},
		"warning":  {zerolog.WarnLevel, true},
		"off":      {zerolog.Disabled, true},
		"trace":    {zerolog.TraceLevel, true},
		"nonsense": {zerolog.InfoLevel, false},
	}
	for raw, tc := range cases {
		got, ok := parseLevel(raw)
		assert.Equal(t, tc.ok, ok, "raw=%q", raw)
		assert.Equal(t, tc.want, got, "raw=%q", raw)
	}
}

func TestParseBool(t *testing.T) {
	v, ok := parseBool("true")
	assert.True(t, ok)
	assert.True(t, v)

	_, ok = parseBool("")
	assert.False(t, ok)

	_, ok = parseBool("maybe")
	assert.False(t, ok)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogTimestamp, "false")
	t.Setenv(EnvLogNoColor, "1")

	cfg := defaultConfig(ProfileRuntime)
	applyEnvOverrides(&cfg)

	assert.Equal(t, zerolog.ErrorLevel, cfg.Level)
	assert.False(t, cfg.Timestamp)
	assert.True(t, cfg.NoColor)
}

func TestApplyWritesThroughConfiguredWriter(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var buf bytes.Buffer
	apply(Config{Level: zerolog.InfoLevel, NoColor: true, Out: &buf})

	log.Debug().Msg("hidden")
	log.Info().Str("port", "4242").Msg("listening")

	out := buf.String()
	require.Contains(t, out, "listening")
	assert.Contains(t, out, "port=4242")
	assert.NotContains(t, out, "hidden")
}
