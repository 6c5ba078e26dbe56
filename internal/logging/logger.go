// Package logging builds the zap logger for fibrun from config.LoggingConfig.
// Logs go to the command's stderr; stdout carries the computed value and nothing else.
// When debug_mode is false every logger is a no-op.
package logging

import (
	"fmt"
	"io"

	"fibrun/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot    Category = "boot"    // Config and logger initialization
	CategoryArgs    Category = "args"    // Positional argument parsing and fallbacks
	CategoryCompute Category = "compute" // Fibonacci runs and timing
)

// New builds the base logger writing to w. It returns zap.NewNop() when
// debug mode is off.
func New(cfg config.LoggingConfig, w io.Writer) (*zap.Logger, error) {
	if !cfg.DebugMode {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var enc zapcore.Encoder
	switch cfg.Format {
	case "json":
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case "text", "":
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(ec)
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core), nil
}

// For returns the named child logger for a category, or a no-op logger when
// the category is disabled in cfg.
func For(base *zap.Logger, cfg config.LoggingConfig, cat Category) *zap.Logger {
	if base == nil || !cfg.IsCategoryEnabled(string(cat)) {
		return zap.NewNop()
	}
	return base.Named(string(cat))
}
