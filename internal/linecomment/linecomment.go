// Package linecomment runs the line comment command against a document.
//
// Flow: resolve the marker, expand the selection to whole lines, read the
// range text, prefix every line, and write the result back over the range.
package linecomment

import (
	"errors"
	"fmt"

	"github.com/thirteen37/linemark/internal/comment"
	"github.com/thirteen37/linemark/internal/document"
	"github.com/thirteen37/linemark/internal/log"
	"github.com/thirteen37/linemark/internal/marker"
	"github.com/thirteen37/linemark/internal/selection"
)

// ErrMissingContext is returned when there is no document or selection to operate on.
var ErrMissingContext = errors.New("no active document or selection")

// ErrUnsupportedLanguage is returned when the language has no line comment marker.
var ErrUnsupportedLanguage = marker.ErrUnsupportedLanguage

// Request describes one invocation of the command.
type Request struct {
	Selection selection.Selection
	Language  string

	// Manual selects the configured marker instead of language resolution.
	Manual bool
	// Marker overrides the configured manual marker. Only used when Manual is set.
	Marker string
}

// Result is the outcome of a successful invocation.
type Result struct {
	Marker      string
	Range       selection.LineRange
	Original    string
	Replacement string
	Document    *document.Document
}

// Commenter applies line comments using a marker resolver and a manual marker.
type Commenter struct {
	resolver     *marker.Resolver
	manualMarker string
}

// New creates a Commenter. manualMarker may name a preset; empty falls back
// to the default marker.
func New(resolver *marker.Resolver, manualMarker string) *Commenter {
	return &Commenter{resolver: resolver, manualMarker: manualMarker}
}

// Marker returns the marker the request would insert.
func (c *Commenter) Marker(req Request) (string, error) {
	if req.Manual {
		value := c.manualMarker
		if req.Marker != "" {
			value = req.Marker
		}
		return marker.Coerce(marker.ResolvePreset(value)), nil
	}

	m, err := c.resolver.Resolve(req.Language)
	if err != nil {
		log.ErrorErr(log.CatMarker, "marker resolution failed", err, "language", req.Language)
		return "", err
	}
	return m, nil
}

// Apply comments out every line spanned by req.Selection. The input document
// is not modified; Result.Document holds the edited copy.
func (c *Commenter) Apply(doc *document.Document, req Request) (*Result, error) {
	if doc == nil {
		return nil, ErrMissingContext
	}

	m, err := c.Marker(req)
	if err != nil {
		return nil, err
	}

	top, bottom := req.Selection.Ordered()
	for _, p := range []selection.Position{top, bottom} {
		if _, err := doc.Offset(p); err != nil {
			return nil, fmt.Errorf("invalid selection: %w", err)
		}
	}

	r := selection.Expand(req.Selection, doc)
	log.Debug(log.CatComment, "expanded selection",
		"mode", req.Selection.Mode, "top", top, "bottom", bottom,
		"range_top", r.Top, "range_bottom", r.Bottom)

	original, err := doc.Text(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read range: %w", err)
	}

	replacement := comment.Insert(original, m)
	log.Debug(log.CatComment, "inserted marker",
		"marker", fmt.Sprintf("%q", m), "lines", comment.CountTerminators(original)+1)

	edited, err := doc.Replace(r, replacement)
	if err != nil {
		return nil, fmt.Errorf("failed to replace range: %w", err)
	}

	return &Result{
		Marker:      m,
		Range:       r,
		Original:    original,
		Replacement: replacement,
		Document:    edited,
	}, nil
}
