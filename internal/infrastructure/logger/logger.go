package logger

import (
	"io"
	"os"

	usecasecontract "github.com/mikiasgoitom/Postboard/internal/usecase/contract"
	log "github.com/sirupsen/logrus"
)

// AppLogger writes structured JSON log lines through logrus.
type AppLogger struct {
	entry *log.Entry
}

// NewLogger creates a logger at the given level ("debug", "info", ...).
// Unknown levels fall back to info.
func NewLogger(level string) usecasecontract.IAppLogger {
	return newLogger(os.Stdout, level)
}

func newLogger(out io.Writer, level string) *AppLogger {
	l := log.New()
	l.SetOutput(out)
	l.SetFormatter(&log.JSONFormatter{})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	l.SetLevel(lvl)
	return &AppLogger{entry: log.NewEntry(l).WithField("service", "postboard")}
}

// Debugf logs a debug message.
func (l *AppLogger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

// Infof logs an info message.
func (l *AppLogger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

// Warnf logs a warning message.
func (l *AppLogger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

// Warningf logs a warning message.
func (l *AppLogger) Warningf(format string, args ...interface{}) {
	l.entry.Warningf(format, args...)
}

// Errorf logs an error message.
func (l *AppLogger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// Fatalf logs a fatal message and exits.
func (l *AppLogger) Fatalf(format string, args ...interface{}) {
	l.entry.Fatalf(format, args...)
}
