package logging

import (
	"io"
	"log/slog"
	"os"
)

func getLogLevel() (lvl slog.Level) {
	logLevelOS, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		return lvl
	}
	err := lvl.UnmarshalText([]byte(logLevelOS))
	if err != nil {
		slog.Warn("Invalid log level", "environ_value", logLevelOS)
	}
	return
}

// EnvironmentLvl is a sentinel: pass it to have the level taken from the
// LOG_LEVEL environment variable.
var EnvironmentLvl slog.Level = -2147483648

//Configure logging. The sink can be nil and will get a sane default.
//Tokens are passwords so nothing in this module ever logs a generated token
//or the secret key that signed it; this setup does not need to redact.
func InitializeLogging(lvl slog.Level, sink io.Writer) {
	if lvl == EnvironmentLvl {
		lvl = getLogLevel()
	}
	options := slog.HandlerOptions{
		Level: lvl,
	}
	if sink == nil {
		sink = os.Stderr
	}
	logger := slog.New(slog.NewJSONHandler(sink, &options))
	slog.SetDefault(logger)
}
