// Package logger builds the zap loggers used by the CLI and the HTTP server.
//
// JSON output uses zap's production encoder for machine consumption; console
// output is a compact human-readable encoder. Both write to stderr so command
// output on stdout stays clean.
package logger

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvmapper/errors"
)

// ErrUnknownLevel indicates a level name zap does not recognise.
var ErrUnknownLevel = errors.Invalid("logger: unknown level")

// ParseLevel maps "debug", "info", "warn", "error" (case-insensitive) to a
// zap level. The empty string means info.
func ParseLevel(s string) (zapcore.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zapcore.InfoLevel, errors.Wrapf(ErrUnknownLevel, "%q", s)
	}

	return lvl, nil
}

// New returns a logger writing to stderr.
func New(level string, jsonOutput bool) (*zap.Logger, error) {
	return NewTo(os.Stderr, level, jsonOutput)
}

// NewTo returns a logger writing to w.
func NewTo(w io.Writer, level string, jsonOutput bool) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var enc zapcore.Encoder
	if jsonOutput {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(cfg)
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		cfg.EncodeCaller = nil
		cfg.CallerKey = ""
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl)), nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger { return zap.NewNop() }
