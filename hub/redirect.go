// © 2026 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package hub

import (
	"log"
	"log/slog"
	"strings"
)

// RedirectStdLog routes the standard library's log package into l, so stray
// log.Printf calls from dependencies land in the hub. Lines are classified
// by an "ERROR "/"WARN "/"INFO " prefix; anything else logs at debug. The
// returned function puts the previous output, flags and prefix back exactly.
func RedirectStdLog(l *Logger) (restore func()) {
	prevWriter := log.Writer()
	prevFlags := log.Flags()
	prevPrefix := log.Prefix()

	log.SetFlags(0)
	log.SetPrefix("")
	log.SetOutput(&loggerWriter{l: l})

	return func() {
		log.SetOutput(prevWriter)
		log.SetFlags(prevFlags)
		log.SetPrefix(prevPrefix)
	}
}

type loggerWriter struct {
	l *Logger
}

func (w *loggerWriter) Write(p []byte) (int, error) {
	msg := strings.TrimSuffix(string(p), "\n")
	switch {
	case strings.HasPrefix(msg, "ERROR "):
		w.l.Log(slog.LevelError, msg[len("ERROR "):])
	case strings.HasPrefix(msg, "WARN "):
		w.l.Log(slog.LevelWarn, msg[len("WARN "):])
	case strings.HasPrefix(msg, "INFO "):
		w.l.Log(slog.LevelInfo, msg[len("INFO "):])
	default:
		w.l.Log(slog.LevelDebug, msg)
	}
	return len(p), nil
}
