// © 2026 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

//go:build property

package logcapture

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/platform-engineering-labs/logcapture/hub"
)

func TestCapture_PropertyProjectionPreservesOrderAndLength(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		msgs := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,8}`), 0, 40).Draw(rt, "msgs")

		h := hub.New()
		c := New(WithHub(h), WithLoggers("db"), WithAttributes("message"))
		defer c.Uninstall()

		for _, msg := range msgs {
			h.Logger("db").Info(msg)
		}

		actual := c.Actual()
		require.Len(rt, actual, len(msgs))
		for i, msg := range msgs {
			require.Equal(rt, msg, actual[i])
		}
	})
}

func TestCheck_PropertyPassesExactlyOnEquality(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		msgs := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,8}`), 0, 20).Draw(rt, "msgs")

		h := hub.New()
		c := New(WithHub(h), WithLoggers("db"), WithAttributes("message"))
		defer c.Uninstall()

		rows := make([]any, len(msgs))
		for i, msg := range msgs {
			h.Logger("db").Info(msg)
			rows[i] = msg
		}

		require.NoError(rt, c.Check(rows...))

		if len(rows) > 0 {
			// Corrupting any single row must break the exact check.
			i := rapid.IntRange(0, len(rows)-1).Draw(rt, "corrupt")
			corrupted := make([]any, len(rows))
			copy(corrupted, rows)
			corrupted[i] = corrupted[i].(string) + "-x"
			require.Error(rt, c.Check(corrupted...))
		}
	})
}

func TestCheckPresent_PropertySubsequencesAlwaysPresent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		msgs := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,6}`), 0, 30).Draw(rt, "msgs")

		h := hub.New()
		c := New(WithHub(h), WithLoggers("db"), WithAttributes("message"))
		defer c.Uninstall()

		var want []any
		for _, msg := range msgs {
			h.Logger("db").Info(msg)
			if rapid.Bool().Draw(rt, "keep") {
				want = append(want, msg)
			}
		}

		require.NoError(rt, c.CheckPresent(want...))
	})
}

func TestCheckPresentAnyOrder_PropertyPermutedSubsetsPass(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		msgs := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,6}`), 0, 30).Draw(rt, "msgs")

		h := hub.New()
		c := New(WithHub(h), WithLoggers("db"), WithAttributes("message"))
		defer c.Uninstall()

		var want []any
		for _, msg := range msgs {
			h.Logger("db").Info(msg)
			if rapid.Bool().Draw(rt, "keep") {
				want = append(want, msg)
			}
		}

		// Fisher-Yates driven by the generator, so shrinking stays deterministic.
		for i := len(want) - 1; i > 0; i-- {
			j := rapid.IntRange(0, i).Draw(rt, "swap")
			want[i], want[j] = want[j], want[i]
		}

		require.NoError(rt, c.CheckPresentAnyOrder(want...))
	})
}

func TestCapture_PropertyInstallRoundTripRestoresConfig(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		level := slog.Level(rapid.IntRange(-12, 16).Draw(rt, "level"))
		disabled := rapid.Bool().Draw(rt, "disabled")
		propagate := rapid.Bool().Draw(rt, "propagate")
		override := rapid.Bool().Draw(rt, "override")

		h := hub.New()
		l := h.Logger("db")
		prior := &sink{}
		l.SetLevel(level)
		l.SetHandlers([]hub.Handler{prior})
		l.SetDisabled(disabled)
		l.SetPropagate(propagate)

		opts := []Option{WithHub(h), WithLoggers("db")}
		if override {
			opts = append(opts, WithPropagate(rapid.Bool().Draw(rt, "forced")))
		}
		c := New(opts...)
		c.Uninstall()

		require.Equal(rt, level, l.Level())
		require.Equal(rt, disabled, l.Disabled())
		require.Equal(rt, propagate, l.Propagate())
		handlers := l.Handlers()
		require.Len(rt, handlers, 1)
		require.Same(rt, prior, handlers[0])
	})
}
