// Package log is the logger abstraction used across the application.
package log

// Kv is a set of key-value pairs attached to log lines.
type Kv = map[string]any

// Logger is the application logger.
type Logger interface {
	Infof(format string, args ...any)
	Warningf(format string, args ...any)
	Errorf(format string, args ...any)
	Debugf(format string, args ...any)
	WithValues(values Kv) Logger
}

// Noop logger discards everything.
const Noop = noop(0)

type noop int

func (n noop) Infof(format string, args ...any)    {}
func (n noop) Warningf(format string, args ...any) {}
func (n noop) Errorf(format string, args ...any)   {}
func (n noop) Debugf(format string, args ...any)   {}
func (n noop) WithValues(_ Kv) Logger              { return n }
