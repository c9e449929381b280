package goolog

import (
	"io"
	"strings"
	"sync"
)

// A sink is one attached output destination. Sinks are attached during
// Init and live until process exit. Each sink serializes access to its
// writer so concurrent emits never interleave partial lines.
type sink struct {
	mu   sync.Mutex
	w    io.Writer
	mode Mode

	// pinned sinks never record messages below Info, regardless of the
	// global minimum severity. Used by the file sink so verbose console
	// debugging does not bloat the persisted log.
	pinned bool
}

func (s *sink) accepts(level Severity) bool {
	return !s.pinned || level >= Info
}

func (s *sink) writeLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.w, line+"\n")
	return err
}

// printWriter adapts a host-supplied print callback to io.Writer. Each
// Write carries exactly one formatted line; the trailing newline is
// stripped so the callback sees the line the way println would.
type printWriter struct {
	fn func(line string)
}

func (p printWriter) Write(b []byte) (int, error) {
	p.fn(strings.TrimSuffix(string(b), "\n"))
	return len(b), nil
}
