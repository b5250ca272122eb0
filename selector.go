// © 2026 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package logcapture

import "github.com/platform-engineering-labs/logcapture/hub"

// Selector extracts one value of a comparison row from a captured record.
// The two forms are Attr, which selects by name, and SelectorFunc, which
// computes the value from the whole record.
type Selector interface {
	pick(r hub.Record) any
}

// Attr selects the record field or attribute with the given name: "name",
// "level", "levelname", "message" and "time" address the record itself, any
// other name addresses an attribute. Names that resolve to nothing select
// nil, and attribute values follow slog's value semantics, so integers come
// back as int64.
type Attr string

func (a Attr) pick(r hub.Record) any { return r.Value(string(a)) }

// SelectorFunc selects by applying a function to the record.
type SelectorFunc func(hub.Record) any

func (f SelectorFunc) pick(r hub.Record) any { return f(r) }
