package goolog

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Mode selects how a sink renders log lines.
type Mode int

const (
	// Plain renders lines without any escape sequences.
	Plain Mode = iota
	// Colored renders lines with ANSI styling. Stripping the escape
	// sequences from a Colored line yields the Plain rendering of the
	// same record, character for character.
	Colored
)

// Record is one log entry on its way to the sinks. Records are built per
// call, consumed synchronously, and never persisted.
type Record struct {
	Level   Severity
	Target  string
	Message string

	// Date and Time hold the pre-formatted timestamp, or are empty when
	// timestamps are disabled for the process.
	Date string
	Time string
}

// The renderer is pinned to the basic ANSI profile so colored output is
// identical whether or not a terminal is attached. Hosts that want no
// color use a Plain sink instead (see WithColor).
var renderer = func() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	return r
}()

var (
	stampStyle  = renderer.NewStyle().Faint(true).Bold(true)
	levelStyles = map[Severity]lipgloss.Style{
		Trace: renderer.NewStyle().Foreground(lipgloss.Color("7")),
		Debug: renderer.NewStyle().Foreground(lipgloss.Color("4")),
		Info:  renderer.NewStyle().Foreground(lipgloss.Color("2")),
		Warn:  renderer.NewStyle().Foreground(lipgloss.Color("3")),
		Error: renderer.NewStyle().Foreground(lipgloss.Color("1")),
		Fatal: renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
)

const fieldSep = " | "

// formatLine builds the single output line for a record:
//
//	[date | time | ]target | LEVEL | message
//
// The timestamp segment is present iff the record carries one. The target
// field is fitted to the budget. formatLine is pure: identical inputs
// produce identical output.
func formatLine(r Record, budget NameBudget, mode Mode) string {
	var b strings.Builder
	b.Grow(64 + len(r.Message))

	if r.Date != "" || r.Time != "" {
		if mode == Colored {
			b.WriteString(stampStyle.Render(r.Date))
			b.WriteString(fieldSep)
			b.WriteString(stampStyle.Render(r.Time))
		} else {
			b.WriteString(r.Date)
			b.WriteString(fieldSep)
			b.WriteString(r.Time)
		}
		b.WriteString(fieldSep)
	}

	b.WriteString(budget.Field(r.Target))
	b.WriteString(fieldSep)

	if mode == Colored {
		b.WriteString(levelStyles[r.Level].Render(r.Level.tag()))
	} else {
		b.WriteString(r.Level.tag())
	}
	b.WriteString(fieldSep)

	b.WriteString(r.Message)
	return b.String()
}
