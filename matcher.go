// © 2026 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package logcapture

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// cmpOptions let comparisons descend into unexported fields, so rows built
// from arbitrary values compare by structure instead of panicking, and treat
// empty and nil sequences alike.
var cmpOptions = cmp.Options{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateEmpty(),
}

func rowsEqual(a, b any) bool {
	return cmp.Equal(a, b, cmpOptions)
}

// indexRow returns the index of the first row at or after from that equals
// want, or -1.
func indexRow(rows []any, want any, from int) int {
	for i := from; i < len(rows); i++ {
		if rowsEqual(rows[i], want) {
			return i
		}
	}
	return -1
}

// compareRows checks expected against actual in full and in order, returning
// a MismatchError when they differ.
func compareRows(expected, actual []any, recursive bool) error {
	if cmp.Equal(expected, actual, cmpOptions) {
		return nil
	}
	err := MismatchError{Expected: expected, Actual: actual}
	if recursive {
		err.Diff = cmp.Diff(expected, actual, cmpOptions)
	}
	return err
}

// Check compares the projected rows against expected, in order and in full.
func (c *Capture) Check(expected ...any) error {
	return compareRows(expected, c.Actual(), c.recursive)
}

// CheckPresent checks that expected occurs within the captured rows as an
// in-order subsequence; captured rows in between are ignored. When a row
// cannot be found, the scan gives back its most recent match and stops
// rather than hunting for alternative alignments, then reports the
// surviving matches followed by the rows not yet scanned. A consequence is
// that the check can still pass at that point, when what survives happens
// to equal the expectation.
func (c *Capture) CheckPresent(expected ...any) error {
	actual := c.Actual()
	cursor, prev := 0, 0
	matched := []any{}
	for _, want := range expected {
		i := indexRow(actual, want, cursor)
		if i < 0 {
			if len(matched) > 0 {
				matched = matched[:len(matched)-1]
				cursor = prev
			}
			rest := actual[cursor:]
			report := make([]any, 0, len(matched)+len(rest))
			report = append(report, matched...)
			report = append(report, rest...)
			return compareRows(expected, report, c.recursive)
		}
		prev, cursor = cursor, i+1
		matched = append(matched, want)
	}
	return nil
}

// CheckPresentAnyOrder checks that every expected row occurs among the
// captured rows, in any order; duplicates must occur as many times as they
// are expected. The scan stops as soon as everything is accounted for, so
// the Others of a failure report cover only the rows inspected up to that
// point.
func (c *Capture) CheckPresentAnyOrder(expected ...any) error {
	pool := make([]any, len(expected))
	copy(pool, expected)

	var matched, others []any
	for _, row := range c.Actual() {
		if i := indexRow(pool, row, 0); i >= 0 {
			matched = append(matched, pool[i])
			pool = append(pool[:i], pool[i+1:]...)
		} else {
			others = append(others, row)
		}
		if len(pool) == 0 {
			break
		}
	}
	if len(pool) > 0 {
		return PresentMismatchError{Matched: matched, Missing: pool, Others: others}
	}
	return nil
}
