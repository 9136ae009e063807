// Package comment prefixes every line of a text block with a comment marker.
package comment

import "strings"

// Segment is either line content or a single line terminator.
type Segment struct {
	Text       string
	Terminator bool
}

// terminatorAt returns the length of the terminator starting at text[i], or 0.
// "\r\n" is matched before a lone "\r".
func terminatorAt(text string, i int) int {
	switch text[i] {
	case '\n':
		return 1
	case '\r':
		if i+1 < len(text) && text[i+1] == '\n' {
			return 2
		}
		return 1
	}
	return 0
}

// Split breaks text into alternating content and terminator segments.
// Empty content segments are omitted; each terminator keeps its exact variant.
func Split(text string) []Segment {
	var segments []Segment
	start := 0
	for i := 0; i < len(text); {
		n := terminatorAt(text, i)
		if n == 0 {
			i++
			continue
		}
		if i > start {
			segments = append(segments, Segment{Text: text[start:i]})
		}
		segments = append(segments, Segment{Text: text[i : i+n], Terminator: true})
		i += n
		start = i
	}
	if start < len(text) {
		segments = append(segments, Segment{Text: text[start:]})
	}
	return segments
}

// CountTerminators returns the number of line terminators in text.
func CountTerminators(text string) int {
	count := 0
	for i := 0; i < len(text); {
		n := terminatorAt(text, i)
		if n == 0 {
			i++
			continue
		}
		count++
		i += n
	}
	return count
}

// Insert places marker at the start of text and right after every line
// terminator, including a terminator that ends the text.
//
// Terminators are copied verbatim, so mixed "\n", "\r\n" and "\r" endings
// survive unchanged. The caller must pass a non-empty marker.
func Insert(text, marker string) string {
	segments := Split(text)

	var sb strings.Builder
	sb.Grow(len(text) + len(marker)*(CountTerminators(text)+1))

	sb.WriteString(marker)
	for _, seg := range segments {
		sb.WriteString(seg.Text)
		if seg.Terminator {
			sb.WriteString(marker)
		}
	}
	return sb.String()
}
