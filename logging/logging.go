package logging

import (
	"io"
	"log"
	"os"
)

// Logger wraps the standard logger with a debug level gated by config.
type Logger struct {
	std   *log.Logger
	debug bool
}

func New(debug bool) *Logger {
	return NewWithOutput(os.Stdout, debug)
}

func NewWithOutput(out io.Writer, debug bool) *Logger {
	return &Logger{
		std:   log.New(out, "[LumenLearn] ", log.LstdFlags|log.LUTC),
		debug: debug,
	}
}

func (l *Logger) Printf(format string, v ...interface{}) {
	l.std.Printf(format, v...)
}

// Debugf logs only when diagnostic logging is enabled.
func (l *Logger) Debugf(format string, v ...interface{}) {
	if l.debug {
		l.std.Printf("DEBUG "+format, v...)
	}
}

// Discard returns a logger that drops everything, for tests.
func Discard() *Logger {
	return &Logger{std: log.New(io.Discard, "", 0)}
}
