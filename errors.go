// © 2026 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package logcapture

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// MismatchError reports that the captured rows differ from the expected
// rows. Diff carries a structural diff when the capture was built with
// WithRecursiveCompare; otherwise both sequences are dumped in full.
type MismatchError struct {
	Expected []any
	Actual   []any
	Diff     string
}

func (e MismatchError) Error() string {
	if e.Diff != "" {
		return fmt.Sprintf("captured logging not as expected (-expected +actual):\n%s", e.Diff)
	}
	return fmt.Sprintf("captured logging not as expected:\n\nexpected:\n%s\nactual:\n%s",
		spew.Sdump(e.Expected), spew.Sdump(e.Actual))
}

// PresentMismatchError reports an unordered containment check that could not
// account for every expected row.
type PresentMismatchError struct {
	Matched []any // expected rows that were found
	Missing []any // expected rows that were not
	Others  []any // captured rows that matched nothing before the scan ended
}

func (e PresentMismatchError) Error() string {
	return fmt.Sprintf(
		"entries not as expected:\n\nexpected and found:\n%s\nexpected but not found:\n%s\nother entries:\n%s",
		spew.Sdump(e.Matched), spew.Sdump(e.Missing), spew.Sdump(e.Others))
}

// UsageError reports invalid use of the capture API, such as conflicting
// construction options. It is panicked rather than returned: the mistake is
// in the test, not in the code under test.
type UsageError struct {
	Reason string
}

func (e UsageError) Error() string {
	return fmt.Sprintf("invalid capture configuration: %s", e.Reason)
}
