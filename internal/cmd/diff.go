package cmd

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/thirteen37/linemark/internal/comment"
	"github.com/thirteen37/linemark/internal/document"
	"github.com/thirteen37/linemark/internal/linecomment"
	"github.com/thirteen37/linemark/internal/selection"
)

// lineRuneBase maps line indexes into the private use area so they never
// collide with surrogates when handed to the rune differ.
const lineRuneBase = 0xE000

// renderDiff returns a single hunk covering the lines res touched in doc.
func renderDiff(name string, doc *document.Document, res *linecomment.Result) (string, error) {
	rest, err := doc.Text(selection.LineRange{Top: res.Range.Bottom, Bottom: nextLineStart(doc, res.Range.Bottom.Line)})
	if err != nil {
		return "", err
	}
	before := res.Original + rest
	after := res.Replacement + rest

	var lines []string
	index := map[string]rune{}
	encode := func(text string) []rune {
		var runes []rune
		for _, line := range splitLines(text) {
			r, ok := index[line]
			if !ok {
				r = rune(lineRuneBase + len(lines))
				index[line] = r
				lines = append(lines, line)
			}
			runes = append(runes, r)
		}
		return runes
	}
	a, b := encode(before), encode(after)

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes(a, b, false)

	start := res.Range.Top.Line + 1
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", name, name)
	fmt.Fprintf(&sb, "@@ -%d,%d +%d,%d @@\n", start, len(a), start, len(b))
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, r := range d.Text {
			line := lines[r-lineRuneBase]
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !endsWithTerminator(line) {
				sb.WriteString("\n\\ No newline at end of file\n")
			} else if !strings.HasSuffix(line, "\n") {
				// A lone "\r" would overwrite the line on a terminal.
				sb.WriteString("\n")
			}
		}
	}
	return sb.String(), nil
}

// nextLineStart is the start of the line after line, or the end of the
// document when line is the last one.
func nextLineStart(doc *document.Document, line int) selection.Position {
	if line+1 < doc.LineCount() {
		return selection.Position{Line: line + 1}
	}
	return doc.LineEnd(line)
}

// splitLines cuts text after every "\n", "\r\n" or "\r", keeping each
// terminator with its line.
func splitLines(text string) []string {
	var lines []string
	var cur strings.Builder
	for _, seg := range comment.Split(text) {
		cur.WriteString(seg.Text)
		if seg.Terminator {
			lines = append(lines, cur.String())
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

func endsWithTerminator(line string) bool {
	return strings.HasSuffix(line, "\n") || strings.HasSuffix(line, "\r")
}
