package logger

import (
	"io"
	"os"
	"roomops/config"
	"roomops/shared/constant"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var output io.Writer = os.Stdout

// InitLogger installs a human readable trace logger for the time before configuration is loaded.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339})
	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies the configured level. An empty or unknown level keeps trace.
// Outside development the console writer is swapped for JSON lines tagged with the app name.
func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.TraceLevel
	}

	if config.Server.Env != "" && config.Server.Env != constant.ServerEnvDevelopment {
		log.Logger = zerolog.New(output).With().Timestamp().Str("app", config.App.Name).Logger()
	}

	zerolog.SetGlobalLevel(level)

	log.Info().Str("loglevel", level.String()).Str("env", config.Server.Env).Msg("Logger configured.")
}
