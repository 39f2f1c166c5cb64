// Package logging provides named, leveled loggers created on demand.
//
// A Provider is passed explicitly to whatever needs to log. It hands out one
// logger per name, creates it on first use and keeps it for the lifetime of
// the Provider. Every line carries the logger name and the level, plus a
// timestamp when Options.Timestamps is set.
//
// Loggers filter by level. The zero Options use info, so Debug output is
// dropped unless the level is lowered (the CLI does so for --verbose or
// --log-level debug). The CLI writes log lines to stderr, keeping stdout for
// --print-config and --version.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	clog "github.com/charmbracelet/log"
)

// ErrInvalidLevel is returned for an unrecognized level name.
var ErrInvalidLevel = errors.New("invalid log level")

// Level names accepted by ParseLevel.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// DefaultTimeFormat is used when timestamps are enabled.
const DefaultTimeFormat = "2006-01-02 15:04:05"

// Logger is the logging surface used across the module.
// *clog.Logger satisfies it directly.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

// Compile-time interface implementation check.
var _ Logger = (*clog.Logger)(nil)

// Options configures every logger a Provider creates.
type Options struct {
	Level      clog.Level // Default: info
	Timestamps bool       // Prefix each line with the time
	TimeFormat string     // Empty = DefaultTimeFormat
}

// Provider is a registry of named loggers sharing one output.
type Provider struct {
	mu      sync.Mutex
	out     io.Writer
	opts    Options
	loggers map[string]*clog.Logger
}

// NewProvider returns a Provider writing to w.
func NewProvider(w io.Writer, opts Options) *Provider {
	if opts.TimeFormat == "" {
		opts.TimeFormat = DefaultTimeFormat
	}
	return &Provider{
		out:     w,
		opts:    opts,
		loggers: make(map[string]*clog.Logger),
	}
}

// Discard returns a Provider whose loggers write nowhere.
func Discard() *Provider {
	return NewProvider(io.Discard, Options{})
}

// Get returns the logger registered under name, creating it on first use.
func (p *Provider) Get(name string) Logger {
	return p.get(name)
}

func (p *Provider) get(name string) *clog.Logger {
	p.mu.Lock()
	defer p.mu.Unlock()

	if l, ok := p.loggers[name]; ok {
		return l
	}
	l := clog.NewWithOptions(p.out, clog.Options{
		Level:           p.opts.Level,
		Prefix:          name,
		ReportTimestamp: p.opts.Timestamps,
		TimeFormat:      p.opts.TimeFormat,
	})
	p.loggers[name] = l
	return l
}

// SetLevel changes the level of every existing and future logger.
func (p *Provider) SetLevel(level clog.Level) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.opts.Level = level
	for _, l := range p.loggers {
		l.SetLevel(level)
	}
}

// Names returns the registered logger names, in no particular order.
func (p *Provider) Names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	names := make([]string, 0, len(p.loggers))
	for name := range p.loggers {
		names = append(names, name)
	}
	return names
}

// ParseLevel converts a level name (debug, info, warn, error) to a clog.Level.
// Matching is case-insensitive; "warning" is accepted for warn.
func ParseLevel(s string) (clog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case LevelDebug:
		return clog.DebugLevel, nil
	case LevelInfo, "":
		return clog.InfoLevel, nil
	case LevelWarn, "warning":
		return clog.WarnLevel, nil
	case LevelError:
		return clog.ErrorLevel, nil
	default:
		return clog.InfoLevel, fmt.Errorf("%w: %q (must be debug, info, warn, or error)", ErrInvalidLevel, s)
	}
}
