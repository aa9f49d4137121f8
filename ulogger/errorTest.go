package ulogger

import (
	"fmt"
)

// TestingT is the subset of testing.T the ErrorTestLogger needs.
type TestingT interface {
	Errorf(format string, args ...interface{})
	Logf(format string, args ...any)
}

// ErrorTestLogger stays quiet unless something logs at error level or above,
// which then fails the test. Useful for tests that must run clean.
type ErrorTestLogger struct {
	t       TestingT
	verbose bool
}

func NewErrorTestLogger(t TestingT) *ErrorTestLogger {
	return &ErrorTestLogger{t: t}
}

func (l *ErrorTestLogger) EnableVerbose() {
	l.verbose = true
}

func (l *ErrorTestLogger) LogLevel() int {
	return 0
}

func (l *ErrorTestLogger) SetLogLevel(level string) {}

func (l *ErrorTestLogger) New(service string, options ...Option) Logger {
	return l
}

func (l *ErrorTestLogger) Duplicate(options ...Option) Logger {
	return l
}

func (l *ErrorTestLogger) Debugf(format string, args ...interface{}) {
	if l.verbose {
		l.t.Logf("[DEBUG] "+format, args...)
	}
}

func (l *ErrorTestLogger) Infof(format string, args ...interface{}) {
	if l.verbose {
		l.t.Logf("[INFO] "+format, args...)
	}
}

func (l *ErrorTestLogger) Warnf(format string, args ...interface{}) {
	if l.verbose {
		l.t.Logf("[WARN] "+format, args...)
	}
}

func (l *ErrorTestLogger) Errorf(format string, args ...interface{}) {
	l.t.Errorf("[ERROR] "+format, args...)
}

func (l *ErrorTestLogger) Fatalf(format string, args ...interface{}) {
	l.t.Errorf("[FATAL] " + fmt.Sprintf(format, args...))
}
