package goolog

import (
	"strings"

	"github.com/pkg/errors"
)

// Severity defines log record severity, ordered from Trace (lowest) to
// Fatal (highest).
type Severity int

const (
	// Trace marks the steps leading up to errors and warnings, providing
	// context for understanding them.
	Trace Severity = iota
	// Debug marks debugging information that tends to create log noise.
	Debug
	// Info marks important information logged under normal conditions,
	// such as services starting.
	Info
	// Warn marks a potential problem that may or may not require
	// investigation.
	Warn
	// Error marks a problem that needs to be investigated.
	Error
	// Fatal marks an unrecoverable problem. Logging at this severity
	// triggers the fatal hook after the record has been written.
	Fatal
)

var severityNames = [...]string{"trace", "debug", "info", "warn", "error", "fatal"}

// tags are the uppercase level names padded to a fixed width of 5 so the
// message column lines up across severities.
var severityTags = [...]string{"TRACE", "DEBUG", "INFO ", "WARN ", "ERROR", "FATAL"}

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	if s < Trace || s > Fatal {
		return "unknown"
	}
	return severityNames[s]
}

// tag returns the uppercase, space-padded level tag used in log lines.
func (s Severity) tag() string {
	if s < Trace || s > Fatal {
		return "?????"
	}
	return severityTags[s]
}

// ParseSeverity parses a severity name, ignoring case and surrounding
// whitespace. It returns Info and an error for unrecognized names.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return Trace, nil
	case "debug":
		return Debug, nil
	case "info":
		return Info, nil
	case "warn", "warning":
		return Warn, nil
	case "error":
		return Error, nil
	case "fatal":
		return Fatal, nil
	}
	return Info, errors.Errorf("unknown severity %q", name)
}
