package logger

import (
	"github.com/sirupsen/logrus"
)

// LogrusLogger forwards Logger calls to a logrus entry.
type LogrusLogger struct {
	entry *logrus.Entry
}

var _ Logger = (*LogrusLogger)(nil)

// NewLogrus wraps a logrus logger. A nil logger falls back to logrus.StandardLogger.
func NewLogrus(base *logrus.Logger) *LogrusLogger {
	if base == nil {
		base = logrus.StandardLogger()
	}
	return &LogrusLogger{entry: logrus.NewEntry(base)}
}

// With returns a logger that includes fields on each log line.
func (l *LogrusLogger) With(fields ...Field) Logger {
	if len(fields) == 0 {
		return l
	}
	return &LogrusLogger{entry: l.entry.WithFields(toLogrusFields(fields))}
}

func (l *LogrusLogger) Debug(msg string, fields ...Field) { l.withFields(fields).Debug(msg) }
func (l *LogrusLogger) Info(msg string, fields ...Field)  { l.withFields(fields).Info(msg) }
func (l *LogrusLogger) Warn(msg string, fields ...Field)  { l.withFields(fields).Warn(msg) }
func (l *LogrusLogger) Error(msg string, fields ...Field) { l.withFields(fields).Error(msg) }

func (l *LogrusLogger) withFields(fields []Field) *logrus.Entry {
	if len(fields) == 0 {
		return l.entry
	}
	return l.entry.WithFields(toLogrusFields(fields))
}

func toLogrusFields(fields []Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, field := range fields {
		if field.Key == "" {
			continue
		}
		out[field.Key] = field.Value
	}
	return out
}
