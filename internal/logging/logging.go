package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates the process logger: JSON output with ISO8601 timestamps and
// caller locations, enriched with the process id and short hostname, and
// teed to the local syslog daemon when one is reachable. A syslog that
// cannot be dialed degrades to local-only output; it never blocks startup.
//
// The explicit override beats the configured level; with neither set the
// logger runs at Info. An unknown level name is an error.
func New(override, configured string) (*zap.Logger, error) {
	level, err := resolveLevel(override, configured)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "json"
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.StacktraceKey = "stacktrace"
	cfg.DisableStacktrace = false

	logger, err := cfg.Build(zap.Fields(
		zap.Int("pid", os.Getpid()),
		zap.String("hostname", shortHostname()),
	))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	syslogCore, err := newSyslogCore(level, cfg.EncoderConfig)
	if err != nil {
		logger.Warn("syslog unreachable, logging locally only", zap.Error(err))
		return logger, nil
	}

	return logger.WithOptions(zap.WrapCore(func(local zapcore.Core) zapcore.Core {
		return zapcore.NewTee(local, syslogCore)
	})), nil
}

// resolveLevel picks the effective log level. Matches the historical
// behavior of rejecting unknown names outright rather than falling back.
func resolveLevel(override, configured string) (zapcore.Level, error) {
	name := configured
	if override != "" {
		name = override
	}
	if name == "" {
		return zapcore.InfoLevel, nil
	}

	level, err := zapcore.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zapcore.InvalidLevel, fmt.Errorf("invalid log level: %q", name)
	}
	return level, nil
}

// shortHostname returns the host name truncated at the first dot.
func shortHostname() string {
	host, err := os.Hostname()
	if err != nil {
		return "localhost"
	}
	host, _, _ = strings.Cut(host, ".")
	return host
}
