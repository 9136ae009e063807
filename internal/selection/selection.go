// Package selection normalizes a user selection into a whole-line range.
package selection

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is a point in a text buffer. Line and Col are 0-based; Col counts bytes.
type Position struct {
	Line int
	Col  int
}

// Compare returns -1, 0 or 1 depending on the document order of a and b.
func Compare(a, b Position) int {
	switch {
	case a.Line < b.Line:
		return -1
	case a.Line > b.Line:
		return 1
	case a.Col < b.Col:
		return -1
	case a.Col > b.Col:
		return 1
	}
	return 0
}

// Before reports whether p comes strictly before other.
func (p Position) Before(other Position) bool {
	return Compare(p, other) < 0
}

// AtLineStart reports whether p sits at column 0.
func (p Position) AtLineStart() bool {
	return p.Col == 0
}

// String formats p as a 1-based "line:col" pair.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Col+1)
}

// ParsePosition parses a 1-based "line" or "line:col" pair.
// Example: "12:5" -> Position{Line: 11, Col: 4}
func ParsePosition(s string) (Position, error) {
	lineStr, colStr, hasCol := strings.Cut(strings.TrimSpace(s), ":")

	line, err := strconv.Atoi(lineStr)
	if err != nil || line < 1 {
		return Position{}, fmt.Errorf("invalid line in position %q", s)
	}

	col := 1
	if hasCol {
		col, err = strconv.Atoi(colStr)
		if err != nil || col < 1 {
			return Position{}, fmt.Errorf("invalid column in position %q", s)
		}
	}

	return Position{Line: line - 1, Col: col - 1}, nil
}

// Mode is the selection mode reported by the host.
type Mode int

const (
	// ModeStream is an ordinary contiguous selection.
	ModeStream Mode = iota
	// ModeBox is a rectangular, column-aligned selection.
	ModeBox
)

func (m Mode) String() string {
	switch m {
	case ModeStream:
		return "stream"
	case ModeBox:
		return "box"
	default:
		return "unknown"
	}
}

// Selection is a raw selection. Start and End may be in either document order.
type Selection struct {
	Start Position
	End   Position
	Mode  Mode
}

// Ordered returns the selection bounds in document order.
func (s Selection) Ordered() (top, bottom Position) {
	if Compare(s.Start, s.End) <= 0 {
		return s.Start, s.End
	}
	return s.End, s.Start
}

// Stream returns s with box geometry discarded.
func (s Selection) Stream() Selection {
	s.Mode = ModeStream
	return s
}

// LineRange is a selection aligned to whole lines.
type LineRange struct {
	Top    Position
	Bottom Position
}

// Lines is the buffer capability Expand needs from the host.
type Lines interface {
	// LineEnd returns the position just before the terminator of line,
	// or the end of the buffer for the last line.
	LineEnd(line int) Position
}

// Expand normalizes sel into a whole-line range.
//
// Top always moves to the start of its line. Bottom moves to the end of its
// line, except when the selection spans several lines and bottom already sits
// at a line start: a selection ending at column 0 of line N+1 covers lines up
// to N and does not pull in line N+1.
func Expand(sel Selection, lines Lines) LineRange {
	top, bottom := sel.Stream().Ordered()

	r := LineRange{
		Top:    Position{Line: top.Line},
		Bottom: bottom,
	}
	if !bottom.AtLineStart() || top.Line == bottom.Line {
		r.Bottom = lines.LineEnd(bottom.Line)
	}
	return r
}
