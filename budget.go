package goolog

import "strings"

// NameBudget controls how many characters the target column of a log line
// may occupy. The zero value is Unbounded: targets are written as-is, with
// no padding or truncation, trading column alignment for full names.
type NameBudget struct {
	width int
}

// Unbounded places no limit on the target column. Lines lose their
// alignment, which is a display trade-off rather than a bug.
var Unbounded = NameBudget{}

// Fixed returns a budget of exactly width characters. A width of zero is
// normalized to Unbounded.
func Fixed(width uint) NameBudget {
	return NameBudget{width: int(width)}
}

// Width returns the column width and whether the budget is fixed.
func (b NameBudget) Width() (int, bool) {
	return b.width, b.width > 0
}

// Field fits label into the budget. Fixed budgets hard-cut labels longer
// than the width and right-pad shorter ones with spaces; the result is
// always exactly width characters. Counting is per rune, so multi-byte
// characters are never split.
func (b NameBudget) Field(label string) string {
	if b.width <= 0 {
		return label
	}
	runes := []rune(label)
	switch {
	case len(runes) > b.width:
		return string(runes[:b.width])
	case len(runes) < b.width:
		return label + strings.Repeat(" ", b.width-len(runes))
	}
	return label
}
