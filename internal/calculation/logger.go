package calculation

import (
	"github.com/sirupsen/logrus"
)

// Logger is a minimal logging interface for the calculation engine.
// Implementations should be fast; the default is a no-op, so library callers
// pay nothing unless they wire a sink in.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// LogrusLogger adapts a logrus logger to the engine's Logger interface. The
// engine itself never logs pay figures as observations; the sink carries
// operational narration only (mapping failures, probation warnings).
type LogrusLogger struct {
	L *logrus.Logger
}

// NewLogrusLogger wraps an existing logrus logger.
func NewLogrusLogger(l *logrus.Logger) LogrusLogger {
	return LogrusLogger{L: l}
}

func (l LogrusLogger) Debugf(format string, args ...any) { l.L.Debugf(format, args...) }
func (l LogrusLogger) Infof(format string, args ...any)  { l.L.Infof(format, args...) }
func (l LogrusLogger) Warnf(format string, args ...any)  { l.L.Warnf(format, args...) }
func (l LogrusLogger) Errorf(format string, args ...any) { l.L.Errorf(format, args...) }
