// Package logging provides the logrus backed implementation of the
// auth package Logger interface.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger wraps a logrus entry tagged with a component name.
type Logger struct {
	entry *logrus.Entry
}

// New creates a root logger at the given level. Unknown levels fall
// back to info.
func New(level, component string) *Logger {
	root := logrus.New()
	root.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	root.SetLevel(parsed)

	return &Logger{entry: root.WithField("component", component)}
}

// WithOutput redirects the backend, mainly for tests.
func (l *Logger) WithOutput(w io.Writer) *Logger {
	l.entry.Logger.SetOutput(w)
	return l
}

// Named derives a logger for another component sharing the same
// backend and level.
func (l *Logger) Named(component string) *Logger {
	return &Logger{entry: l.entry.Logger.WithField("component", component)}
}

func (l *Logger) Debug(format string, args ...any) {
	l.entry.Debugf(format, args...)
}

func (l *Logger) Info(format string, args ...any) {
	l.entry.Infof(format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.entry.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.entry.Errorf(format, args...)
}
