// Package document adapts a plain text buffer to the selection capability set.
//
// Lines may end in "\n", "\r\n" or "\r", mixed freely within one buffer.
// Columns are byte offsets within a line.
package document

import (
	"errors"
	"fmt"
	"sort"

	"github.com/thirteen37/linemark/internal/selection"
)

// ErrOutOfRange is returned for a position past the last line or an inverted range.
var ErrOutOfRange = errors.New("position out of range")

// line holds the byte offsets of one line's content, excluding its terminator.
type line struct {
	start int
	end   int
}

// Document is an immutable text buffer with a line table.
type Document struct {
	text  string
	lines []line
}

// New builds a document over text.
func New(text string) *Document {
	d := &Document{text: text}
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			d.lines = append(d.lines, line{start: start, end: i})
			start = i + 1
		case '\r':
			d.lines = append(d.lines, line{start: start, end: i})
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	d.lines = append(d.lines, line{start: start, end: len(text)})
	return d
}

// String returns the document text.
func (d *Document) String() string {
	return d.text
}

// LineCount returns the number of lines. An empty document has one line.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// LineEnd returns the position just before the terminator of the given line.
// Lines outside the document are clamped to the first or last line.
func (d *Document) LineEnd(n int) selection.Position {
	n = clampLine(n, len(d.lines))
	l := d.lines[n]
	return selection.Position{Line: n, Col: l.end - l.start}
}

// Offset converts a position to a byte offset. Columns past the end of the
// line are clamped to the line end.
func (d *Document) Offset(p selection.Position) (int, error) {
	if p.Line < 0 || p.Line >= len(d.lines) || p.Col < 0 {
		return 0, fmt.Errorf("%w: %s (document has %d lines)", ErrOutOfRange, p, len(d.lines))
	}
	l := d.lines[p.Line]
	return min(l.start+p.Col, l.end), nil
}

// Position converts a byte offset to a position. Offsets inside a "\r\n" pair
// or past the end are clamped.
func (d *Document) Position(offset int) selection.Position {
	offset = max(0, min(offset, len(d.text)))
	n := sort.Search(len(d.lines), func(i int) bool {
		return d.lines[i].start > offset
	}) - 1
	l := d.lines[n]
	return selection.Position{Line: n, Col: min(offset, l.end) - l.start}
}

// Text returns the text between r.Top and r.Bottom.
func (d *Document) Text(r selection.LineRange) (string, error) {
	from, to, err := d.span(r)
	if err != nil {
		return "", err
	}
	return d.text[from:to], nil
}

// Replace returns a new document with the text of r replaced by text.
// The replacement is written verbatim; the receiver is left untouched.
func (d *Document) Replace(r selection.LineRange, text string) (*Document, error) {
	from, to, err := d.span(r)
	if err != nil {
		return nil, err
	}
	return New(d.text[:from] + text + d.text[to:]), nil
}

func (d *Document) span(r selection.LineRange) (int, int, error) {
	from, err := d.Offset(r.Top)
	if err != nil {
		return 0, 0, err
	}
	to, err := d.Offset(r.Bottom)
	if err != nil {
		return 0, 0, err
	}
	if to < from {
		return 0, 0, fmt.Errorf("%w: range %s-%s is inverted", ErrOutOfRange, r.Top, r.Bottom)
	}
	return from, to, nil
}

func clampLine(n, count int) int {
	if n < 0 {
		return 0
	}
	if n >= count {
		return count - 1
	}
	return n
}

// Ensure Document implements selection.Lines.
var _ selection.Lines = (*Document)(nil)
