package logger

import (
	"bytes"
	"errors"
	"roomops/config"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()

	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	originalOutput := output

	buf := &bytes.Buffer{}
	output = buf

	t.Cleanup(func() {
		log.Logger = originalLogger
		output = originalOutput
		zerolog.SetGlobalLevel(originalLevel)
	})

	return buf
}

func TestInitLogger(t *testing.T) {
	buf := capture(t)

	InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
	assert.Contains(t, buf.String(), "Zerolog initialized.")
}

func TestErrorWithStack(t *testing.T) {
	buf := capture(t)
	log.Logger = zerolog.New(buf)

	ErrorWithStack(errors.New("inspection store unavailable"))

	assert.Contains(t, buf.String(), "inspection store unavailable")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		env       string
		wantLevel zerolog.Level
		wantJSON  bool
	}{
		{name: "info in development", logLevel: "info", env: "development", wantLevel: zerolog.InfoLevel},
		{name: "debug", logLevel: "debug", wantLevel: zerolog.DebugLevel},
		{name: "disabled", logLevel: "disabled", wantLevel: zerolog.Disabled},
		{name: "unknown level keeps trace", logLevel: "chatty", wantLevel: zerolog.TraceLevel},
		{name: "empty level keeps trace", logLevel: "", wantLevel: zerolog.TraceLevel},
		{name: "production writes json", logLevel: "info", env: "production", wantLevel: zerolog.InfoLevel, wantJSON: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t)
			InitLogger()
			buf.Reset()

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel
			cfg.Server.Env = tt.env
			cfg.App.Name = "roomops"

			SetLogLevel(cfg)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			log.Warn().Msg("probe")

			if tt.wantJSON {
				assert.Contains(t, buf.String(), `"app":"roomops"`)
			} else if tt.wantLevel <= zerolog.WarnLevel {
				assert.NotContains(t, buf.String(), `"app":"roomops"`)
				assert.Contains(t, buf.String(), "probe")
			}
		})
	}
}
