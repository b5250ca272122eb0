// © 2026 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// Package hub provides a registry of named, individually configurable
// loggers built on log/slog's vocabulary. Every logger carries its own
// level, handler list, disabled flag and propagation flag, all of which can
// be inspected and replaced at runtime; dotted names form an ancestry along
// which records propagate, so a handler on "db" also sees records logged to
// "db.pool". This mutable per-name configuration is what the capture
// machinery in the parent package installs itself into.
package hub

import (
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"
)

// LevelAll is lower than any level a record will carry, so a logger set to
// it passes everything through.
const LevelAll = slog.Level(-100)

// LevelNone is higher than any level a record will carry, so a logger set to
// it drops everything.
const LevelNone = slog.Level(100)

// Logger is a named logging channel with mutable configuration. Loggers are
// created and owned by a Hub; the zero value is not usable.
type Logger struct {
	hub  *Hub
	name string

	mu        sync.RWMutex
	level     slog.Level
	handlers  []Handler
	disabled  bool
	propagate bool
}

// Name returns the logger's registered name. The root logger's name is "".
func (l *Logger) Name() string { return l.name }

func (l *Logger) Level() slog.Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

func (l *Logger) SetLevel(level slog.Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Handlers returns a copy of the logger's handler list.
func (l *Logger) Handlers() []Handler {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Handler, len(l.handlers))
	copy(out, l.handlers)
	return out
}

// SetHandlers replaces the handler list. The slice is copied, so the caller
// keeps no alias into the logger's state.
func (l *Logger) SetHandlers(handlers []Handler) {
	hs := make([]Handler, len(handlers))
	copy(hs, handlers)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handlers = hs
}

func (l *Logger) AddHandler(h Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handlers = append(l.handlers, h)
}

func (l *Logger) Disabled() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.disabled
}

func (l *Logger) SetDisabled(disabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.disabled = disabled
}

// Propagate reports whether records dispatched through this logger continue
// on to its ancestors' handlers. New loggers propagate.
func (l *Logger) Propagate() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.propagate
}

func (l *Logger) SetPropagate(propagate bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.propagate = propagate
}

// Enabled reports whether a record at the given level would be dispatched.
func (l *Logger) Enabled(level slog.Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return !l.disabled && level >= l.level
}

// Log dispatches a record at the given level. args carry attributes as
// key/value pairs in the style of log/slog.
func (l *Logger) Log(level slog.Level, msg string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	l.dispatch(Record{
		Time:    time.Now(),
		Name:    l.name,
		Level:   level,
		Message: msg,
		Attrs:   argsToAttrs(args),
	})
}

func (l *Logger) Debug(msg string, args ...any) { l.Log(slog.LevelDebug, msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.Log(slog.LevelInfo, msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.Log(slog.LevelWarn, msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.Log(slog.LevelError, msg, args...) }

// dispatch delivers r to the logger's own handlers and then, while
// propagation stays enabled, to each dotted-name ancestor's handlers up to
// the root. Ancestor levels and disabled flags do not gate delivery; the
// logger that produced the record already decided.
func (l *Logger) dispatch(r Record) {
	l.emit(r)
	cur := l
	for cur.Propagate() && cur.name != "" {
		parent := l.hub.Logger(parentName(cur.name))
		parent.emit(r)
		cur = parent
	}
}

func (l *Logger) emit(r Record) {
	for _, h := range l.Handlers() {
		h.Emit(r)
	}
}

func parentName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return ""
}

// Hub is a registry of named loggers. The empty name addresses the root
// logger; dotted names form an ancestry, so "db.pool" propagates to "db" and
// then to the root.
type Hub struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
}

func New() *Hub {
	return &Hub{loggers: make(map[string]*Logger)}
}

// Logger returns the logger registered under name, creating it on first use.
// The same name always yields the same logger. New loggers start at
// slog.LevelInfo with no handlers, enabled and propagating.
func (h *Hub) Logger(name string) *Logger {
	h.mu.RLock()
	l, ok := h.loggers[name]
	h.mu.RUnlock()
	if ok {
		return l
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if l, ok := h.loggers[name]; ok {
		return l
	}
	l = &Logger{
		hub:       h,
		name:      name,
		level:     slog.LevelInfo,
		propagate: true,
	}
	h.loggers[name] = l
	return l
}

// Root returns the root logger.
func (h *Hub) Root() *Logger { return h.Logger("") }

// Names lists the registered logger names in sorted order.
func (h *Hub) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.loggers))
	for name := range h.loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultHub = sync.OnceValue(New)

// Default returns the process-wide hub.
func Default() *Hub { return defaultHub() }

// GetLogger returns a logger from the default hub.
func GetLogger(name string) *Logger { return Default().Logger(name) }
