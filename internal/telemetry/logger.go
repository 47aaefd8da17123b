// Package telemetry provides the process-wide structured logger used by
// every forestlab binary.
package telemetry

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var base *zap.Logger

// Logger returns a logger scoped to component, constructing the
// process-wide base logger on first use. If LOG_FILE is set, log lines
// are teed to that file and stdout; otherwise a standard production
// logger writes to stderr. component is attached to every line this
// logger emits, so forestcli's subcommands and forestserver's handlers
// can be told apart in a shared log stream or file.
func Logger(component string) *zap.Logger {
	return baseLogger().With(zap.String("component", component))
}

func baseLogger() *zap.Logger {
	if base != nil {
		return base
	}

	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		l, _ := zap.NewProduction()
		base = l
		return base
	}

	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		l, _ := zap.NewProduction()
		base = l
		return base
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		l, _ := zap.NewProduction()
		base = l
		return base
	}

	encCfg := zap.NewProductionEncoderConfig()
	enc := zapcore.NewJSONEncoder(encCfg)
	lvl := zapcore.InfoLevel
	fileCore := zapcore.NewCore(enc, zapcore.AddSync(f), lvl)
	consoleCore := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), lvl)
	base = zap.New(zapcore.NewTee(fileCore, consoleCore))
	return base
}
