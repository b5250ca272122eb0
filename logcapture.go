// © 2026 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// Package logcapture captures log records during tests and checks them
// against expectations.
//
// A Capture takes over one or more named loggers in a hub registry: it
// saves each logger's configuration, points the logger at its own buffer,
// and puts everything back on Uninstall. While installed, every record the
// targeted loggers dispatch lands in the buffer in emission order. The
// buffered records are projected into comparison rows (by default name,
// level name and message) and checked with Check, CheckPresent or
// CheckPresentAnyOrder.
//
//	capture := logcapture.ForTest(t, logcapture.WithLoggers("db"))
//
//	db.Warn("connection lost")
//
//	require.NoError(t, capture.Check(
//		logcapture.Row("db", "WARN", "connection lost"),
//	))
package logcapture

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/platform-engineering-labs/logcapture/hub"
)

// loggerState is the part of a logger's configuration that installing a
// capture disturbs. It is saved before the first mutation and restored
// verbatim on uninstall.
type loggerState struct {
	level     slog.Level
	handlers  []hub.Handler
	disabled  bool
	propagate bool
}

// Capture buffers the records of one or more hub loggers while installed
// and checks them against expected rows.
type Capture struct {
	hub       *hub.Hub
	names     []string
	level     slog.Level
	propagate *bool

	selectors []Selector
	rowFn     func(hub.Record) any
	recursive bool

	saved map[string]loggerState

	mu      sync.Mutex
	records []hub.Record
}

type settings struct {
	hub       *hub.Hub
	names     []string
	level     slog.Level
	propagate *bool
	selectors []Selector
	rowFn     func(hub.Record) any
	rowFnSet  bool
	recursive bool
	install   bool
}

// Option configures a Capture under construction.
type Option func(*settings)

// WithLoggers selects the loggers to capture by name. The default is the
// root logger, which also sees everything that propagates up to it.
func WithLoggers(names ...string) Option {
	return func(s *settings) { s.names = append(s.names, names...) }
}

// WithHub captures loggers of the given hub instead of the default one.
func WithHub(h *hub.Hub) Option {
	return func(s *settings) { s.hub = h }
}

// WithLevel sets the level forced onto the captured loggers while the
// capture is installed. The default is hub.LevelAll, so nothing is missed.
func WithLevel(level slog.Level) Option {
	return func(s *settings) { s.level = level }
}

// WithPropagate overrides the captured loggers' propagate flag while the
// capture is installed. Without this option the flag is left as found.
// Capturing a child logger with propagation off keeps its records from
// reaching handlers configured on its ancestors.
func WithPropagate(propagate bool) Option {
	return func(s *settings) { s.propagate = &propagate }
}

// WithAttributes projects each record through the named attributes instead
// of the default name, levelname and message. See Attr for the names.
func WithAttributes(names ...string) Option {
	return func(s *settings) {
		if s.selectors == nil {
			s.selectors = []Selector{}
		}
		for _, name := range names {
			s.selectors = append(s.selectors, Attr(name))
		}
	}
}

// WithSelectors projects each record through the given selectors in order.
func WithSelectors(selectors ...Selector) Option {
	return func(s *settings) {
		if s.selectors == nil {
			s.selectors = []Selector{}
		}
		s.selectors = append(s.selectors, selectors...)
	}
}

// WithRowFunc replaces attribute selection: each record becomes whatever fn
// returns for it. Mutually exclusive with WithAttributes and WithSelectors.
func WithRowFunc(fn func(hub.Record) any) Option {
	return func(s *settings) {
		s.rowFn = fn
		s.rowFnSet = true
	}
}

// WithRecursiveCompare makes failed checks report a structural diff of
// expected versus actual instead of dumping both sequences.
func WithRecursiveCompare() Option {
	return func(s *settings) { s.recursive = true }
}

// WithoutInstall creates the capture without installing it, for callers that
// manage the install/uninstall cycle themselves.
func WithoutInstall() Option {
	return func(s *settings) { s.install = false }
}

// New creates a capture and, unless WithoutInstall is given, installs it
// immediately. Conflicting options panic with a UsageError: they are
// programmer errors in the test itself, not conditions a test should have
// to check for.
func New(opts ...Option) *Capture {
	s := settings{
		level:   hub.LevelAll,
		install: true,
	}
	for _, opt := range opts {
		opt(&s)
	}

	if s.rowFnSet && s.rowFn == nil {
		panic(UsageError{Reason: "row function must not be nil"})
	}
	if s.rowFn != nil && s.selectors != nil {
		panic(UsageError{Reason: "a row function and attribute selectors are mutually exclusive"})
	}
	if s.selectors != nil && len(s.selectors) == 0 {
		panic(UsageError{Reason: "at least one attribute selector is required"})
	}
	if s.rowFn == nil && s.selectors == nil {
		s.selectors = []Selector{Attr("name"), Attr("levelname"), Attr("message")}
	}

	h := s.hub
	if h == nil {
		h = hub.Default()
	}
	names := s.names
	if len(names) == 0 {
		names = []string{""}
	}

	c := &Capture{
		hub:       h,
		names:     names,
		level:     s.level,
		propagate: s.propagate,
		selectors: s.selectors,
		rowFn:     s.rowFn,
		recursive: s.recursive,
	}
	if s.install {
		c.Install()
	}
	return c
}

// Install takes over every target logger: the logger's current level,
// handlers, disabled and propagate flags are saved, then the level is forced
// to the capture level, the handler list is replaced by the capture itself,
// the logger is enabled, and propagation is overridden when requested.
// Installing an already-installed capture saves the captured state over the
// earlier snapshot; installs do not stack.
func (c *Capture) Install() {
	if c.saved == nil {
		c.saved = make(map[string]loggerState, len(c.names))
	}
	for _, name := range c.names {
		l := c.hub.Logger(name)
		c.saved[name] = loggerState{
			level:     l.Level(),
			handlers:  l.Handlers(),
			disabled:  l.Disabled(),
			propagate: l.Propagate(),
		}
		l.SetLevel(c.level)
		l.SetHandlers([]hub.Handler{c})
		l.SetDisabled(false)
		if c.propagate != nil {
			l.SetPropagate(*c.propagate)
		}
	}
	active.add(c)
}

// Uninstall restores every target logger to its saved configuration. A
// capture that is not installed is left alone, so deferred and repeated
// uninstalls are safe. The buffer survives uninstall.
func (c *Capture) Uninstall() {
	if !active.remove(c) {
		return
	}
	for _, name := range c.names {
		st := c.saved[name]
		l := c.hub.Logger(name)
		l.SetLevel(st.level)
		l.SetHandlers(st.handlers)
		l.SetDisabled(st.disabled)
		l.SetPropagate(st.propagate)
	}
}

// Installed reports whether the capture currently holds its target loggers.
func (c *Capture) Installed() bool {
	return active.contains(c)
}

// Emit appends the record to the buffer. It makes Capture a hub.Handler,
// which is how installed loggers feed it; records arrive in emission order.
func (c *Capture) Emit(r hub.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, r)
}

// Clear discards the buffered records. The capture stays installed.
func (c *Capture) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = nil
}

// Records returns a copy of the buffered records in emission order.
func (c *Capture) Records() []hub.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	records := make([]hub.Record, len(c.records))
	copy(records, c.records)
	return records
}

// Actual projects the buffered records into comparison rows, recomputed on
// every call. With a single selector each row is the bare selected value;
// with several it is a []any in selector order. A row function replaces
// selection entirely.
func (c *Capture) Actual() []any {
	records := c.Records()
	rows := make([]any, 0, len(records))
	for _, r := range records {
		switch {
		case c.rowFn != nil:
			rows = append(rows, c.rowFn(r))
		case len(c.selectors) == 1:
			rows = append(rows, c.selectors[0].pick(r))
		default:
			row := make([]any, len(c.selectors))
			for i, sel := range c.selectors {
				row[i] = sel.pick(r)
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// String renders the projected rows, one per record, with three-part rows
// shown as "name LEVEL" and the message indented beneath.
func (c *Capture) String() string {
	rows := c.Actual()
	if len(rows) == 0 {
		return "no logging captured"
	}
	parts := make([]string, len(rows))
	for i, row := range rows {
		if tuple, ok := row.([]any); ok && len(tuple) == 3 {
			parts[i] = fmt.Sprintf("%v %v\n  %v", tuple[0], tuple[1], tuple[2])
		} else {
			parts[i] = fmt.Sprintf("%v", row)
		}
	}
	return strings.Join(parts, "\n")
}

// Row builds an expected comparison row for captures that project several
// attributes per record.
func Row(values ...any) []any { return values }
