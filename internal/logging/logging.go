// Package logging builds the zap logger the CLI reports diagnostics through.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLevel names the environment variable that overrides the log level.
const EnvLevel = "PSTATEDUMP_LOG_LEVEL"

const defaultLevel = zapcore.WarnLevel

// New returns a console logger on stderr at the given level ("" means warn).
func New(level string) (*zap.Logger, error) {
	return NewWithWriter(zapcore.Lock(os.Stderr), level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	enc.StacktraceKey = ""
	enc.NameKey = "logger"

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), lvl)
	return zap.New(core).Named("pstatedump"), nil
}

func parseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return defaultLevel, nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return defaultLevel, fmt.Errorf("%s: %w", EnvLevel, err)
	}
	return lvl, nil
}
