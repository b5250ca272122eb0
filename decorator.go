// © 2026 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package logcapture

import "testing"

// Wrap composes a test function with paired enter and exit hooks. The exit
// hook runs however the body returns, panics included.
func Wrap(onEnter, onExit func()) func(func(*testing.T)) func(*testing.T) {
	return func(body func(*testing.T)) func(*testing.T) {
		return func(t *testing.T) {
			onEnter()
			defer onExit()
			body(t)
		}
	}
}

// CaptureTest builds a test decorator around a single fresh capture. Each
// wrapped test installs the capture and clears its buffer on entry, receives
// it alongside the *testing.T, and uninstalls it on exit. The clear matters
// because the same capture serves every test the decorator wraps.
//
//	check := logcapture.CaptureTest(logcapture.WithLoggers("db"))
//
//	t.Run("reports timeouts", check(func(t *testing.T, capture *logcapture.Capture) {
//		...
//	}))
func CaptureTest(opts ...Option) func(func(*testing.T, *Capture)) func(*testing.T) {
	c := New(append(opts, WithoutInstall())...)
	wrapper := Wrap(func() {
		c.Install()
		c.Clear()
	}, c.Uninstall)

	return func(body func(*testing.T, *Capture)) func(*testing.T) {
		return wrapper(func(t *testing.T) {
			body(t, c)
		})
	}
}

// ForTest installs a capture for the duration of a single test and
// uninstalls it through tb's cleanup.
func ForTest(tb testing.TB, opts ...Option) *Capture {
	tb.Helper()
	c := New(opts...)
	tb.Cleanup(c.Uninstall)
	return c
}
