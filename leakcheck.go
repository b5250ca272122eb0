// © 2026 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package logcapture

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"testing"
)

// activeSet tracks every capture currently installed in the process, so
// stragglers can be swept up and reported.
type activeSet struct {
	mu  sync.Mutex
	set map[*Capture]struct{}
}

var active = &activeSet{set: make(map[*Capture]struct{})}

func (s *activeSet) add(c *Capture) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set[c] = struct{}{}
}

// remove reports whether c was present.
func (s *activeSet) remove(c *Capture) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.set[c]
	delete(s.set, c)
	return ok
}

func (s *activeSet) contains(c *Capture) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.set[c]
	return ok
}

func (s *activeSet) snapshot() []*Capture {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Capture, 0, len(s.set))
	for c := range s.set {
		out = append(out, c)
	}
	return out
}

// UninstallAll uninstalls every capture currently installed. The set is
// snapshotted first, since each uninstall shrinks it.
func UninstallAll() {
	for _, c := range active.snapshot() {
		c.Uninstall()
	}
}

// VerifyTestMain runs a test suite and then warns on stderr about any
// captures left installed, one line of logger names per capture. The
// warning is advisory and never changes the exit code.
//
//	func TestMain(m *testing.M) {
//		logcapture.VerifyTestMain(m)
//	}
func VerifyTestMain(m *testing.M) {
	code := m.Run()
	reportLeaks(os.Stderr)
	os.Exit(code)
}

func reportLeaks(w io.Writer) {
	leaked := active.snapshot()
	if len(leaked) == 0 {
		return
	}
	lines := make([]string, len(leaked))
	for i, c := range leaked {
		lines[i] = strings.Join(displayNames(c.names), ", ")
	}
	sort.Strings(lines)
	fmt.Fprintf(w, "captures not uninstalled by shutdown, loggers captured:\n%s\n",
		strings.Join(lines, "\n"))
}

func displayNames(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		if name == "" {
			name = "(root)"
		}
		out[i] = name
	}
	return out
}
