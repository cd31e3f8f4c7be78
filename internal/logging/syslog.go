package logging

import (
	"log/syslog"
	"os"

	"go.uber.org/zap/zapcore"
)

const syslogTag = "git2edx"

// syslogTarget probes the conventional local syslog sockets and falls back
// to UDP on the standard syslog port when neither exists.
func syslogTarget() (network, addr string) {
	for _, socket := range []string{"/dev/log", "/var/run/syslog"} {
		if _, err := os.Stat(socket); err == nil {
			return "unixgram", socket
		}
	}
	return "udp", "127.0.0.1:514"
}

// syslogCore forwards entries to a syslog writer, mapping zap levels onto
// syslog severities. Fields are rendered through a console encoder so the
// syslog line stays a single readable message.
type syslogCore struct {
	zapcore.LevelEnabler
	enc    zapcore.Encoder
	writer *syslog.Writer
}

func newSyslogCore(level zapcore.Level, encCfg zapcore.EncoderConfig) (zapcore.Core, error) {
	network, addr := syslogTarget()
	writer, err := syslog.Dial(network, addr, syslog.LOG_LOCAL0|syslog.LOG_INFO, syslogTag)
	if err != nil {
		return nil, err
	}

	// The syslog daemon stamps its own time and host.
	encCfg.TimeKey = zapcore.OmitKey

	return &syslogCore{
		LevelEnabler: level,
		enc:          zapcore.NewConsoleEncoder(encCfg),
		writer:       writer,
	}, nil
}

func (c *syslogCore) With(fields []zapcore.Field) zapcore.Core {
	clone := c.enc.Clone()
	for i := range fields {
		fields[i].AddTo(clone)
	}
	return &syslogCore{LevelEnabler: c.LevelEnabler, enc: clone, writer: c.writer}
}

func (c *syslogCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *syslogCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	buf, err := c.enc.EncodeEntry(entry, fields)
	if err != nil {
		return err
	}
	defer buf.Free()

	msg := buf.String()
	switch {
	case entry.Level >= zapcore.ErrorLevel:
		return c.writer.Err(msg)
	case entry.Level == zapcore.WarnLevel:
		return c.writer.Warning(msg)
	case entry.Level == zapcore.DebugLevel:
		return c.writer.Debug(msg)
	default:
		return c.writer.Info(msg)
	}
}

func (c *syslogCore) Sync() error { return nil }
