// © 2026 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package hub

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Handler consumes records dispatched by loggers.
type Handler interface {
	Emit(Record)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(Record)

func (f HandlerFunc) Emit(r Record) { f(r) }

// slogHandler forwards records to a log/slog handler. The logger name rides
// along as the "logger" attribute.
type slogHandler struct {
	h slog.Handler
}

// NewSlogHandler wraps any slog.Handler as a hub Handler.
func NewSlogHandler(h slog.Handler) Handler {
	return &slogHandler{h: h}
}

func (s *slogHandler) Emit(r Record) {
	sr := slog.NewRecord(r.Time, r.Level, r.Message, 0)
	if r.Name != "" {
		sr.AddAttrs(slog.String("logger", r.Name))
	}
	sr.AddAttrs(r.Attrs...)
	_ = s.h.Handle(context.Background(), sr)
}

// ConsoleOptions configures NewConsoleHandler.
type ConsoleOptions struct {
	Level      slog.Level // minimum level to write; LevelAll when unset via nil options
	TimeFormat string     // defaults to time.RFC3339
}

// NewConsoleHandler writes human-readable, colorized records to w.
func NewConsoleHandler(w io.Writer, opts *ConsoleOptions) Handler {
	if opts == nil {
		opts = &ConsoleOptions{Level: LevelAll}
	}
	timeFormat := opts.TimeFormat
	if timeFormat == "" {
		timeFormat = time.RFC3339
	}
	return NewSlogHandler(tint.NewHandler(w, &tint.Options{
		Level:      opts.Level,
		TimeFormat: timeFormat,
	}))
}

type jsonHandler struct {
	mu  sync.Mutex
	enc *json.Encoder
}

type jsonEntry struct {
	Time    time.Time      `json:"time"`
	Logger  string         `json:"logger,omitempty"`
	Level   string         `json:"level"`
	Message string         `json:"msg"`
	Attrs   map[string]any `json:"attrs,omitempty"`
}

// NewJSONHandler writes one JSON object per record to w.
func NewJSONHandler(w io.Writer) Handler {
	return &jsonHandler{enc: json.NewEncoder(w)}
}

func (h *jsonHandler) Emit(r Record) {
	entry := jsonEntry{
		Time:    r.Time,
		Logger:  r.Name,
		Level:   r.LevelName(),
		Message: r.Message,
	}
	if len(r.Attrs) > 0 {
		entry.Attrs = make(map[string]any, len(r.Attrs))
		for _, a := range r.Attrs {
			entry.Attrs[a.Key] = a.Value.Resolve().Any()
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_ = h.enc.Encode(entry)
}

// FileOptions configures NewFileHandler.
type FileOptions struct {
	MaxSizeMB  int
	MaxBackups int
	Compress   bool
}

// NewFileHandler writes JSON records to a size-rotated log file.
func NewFileHandler(path string, opts *FileOptions) Handler {
	lumber := &lumberjack.Logger{
		Filename: path,
		Compress: true,
	}
	if opts != nil {
		lumber.MaxSize = opts.MaxSizeMB
		lumber.MaxBackups = opts.MaxBackups
		lumber.Compress = opts.Compress
	}
	return NewJSONHandler(lumber)
}

type levelHandler struct {
	min  slog.Level
	next Handler
}

// NewLevelHandler wraps next with a per-handler level threshold, dropping
// records below min regardless of how permissive the dispatching logger is.
func NewLevelHandler(min slog.Level, next Handler) Handler {
	return levelHandler{min: min, next: next}
}

func (h levelHandler) Emit(r Record) {
	if r.Level < h.min {
		return
	}
	h.next.Emit(r)
}
