// © 2026 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package hub

import (
	"log/slog"
	"time"
)

// Record is a single log event as delivered to handlers.
type Record struct {
	Time    time.Time
	Name    string // name of the logger that produced the record
	Level   slog.Level
	Message string
	Attrs   []slog.Attr
}

// LevelName returns the textual form of the record's level, e.g. "INFO".
func (r Record) LevelName() string {
	return r.Level.String()
}

// Attr looks up an attribute by key.
func (r Record) Attr(key string) (slog.Value, bool) {
	for _, a := range r.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return slog.Value{}, false
}

// Value resolves a named field of the record. The names "name", "level",
// "levelname", "message" and "time" address the record itself; any other
// name is looked up among the attributes, resolving to the attribute's
// underlying value (slog value semantics, so integers come back as int64).
// Names that resolve to nothing yield nil.
func (r Record) Value(key string) any {
	switch key {
	case "name":
		return r.Name
	case "level":
		return r.Level
	case "levelname":
		return r.LevelName()
	case "message":
		return r.Message
	case "time":
		return r.Time
	}
	if v, ok := r.Attr(key); ok {
		return v.Resolve().Any()
	}
	return nil
}

const badKey = "!BADKEY"

// argsToAttrs pairs up loosely-typed logging arguments into attributes,
// following the same rules as log/slog: a string starts a key/value pair, an
// slog.Attr passes through, anything else is flagged under !BADKEY.
func argsToAttrs(args []any) []slog.Attr {
	var attrs []slog.Attr
	for len(args) > 0 {
		switch arg := args[0].(type) {
		case string:
			if len(args) == 1 {
				attrs = append(attrs, slog.String(badKey, arg))
				return attrs
			}
			attrs = append(attrs, slog.Any(arg, args[1]))
			args = args[2:]
		case slog.Attr:
			attrs = append(attrs, arg)
			args = args[1:]
		default:
			attrs = append(attrs, slog.Any(badKey, arg))
			args = args[1:]
		}
	}
	return attrs
}
