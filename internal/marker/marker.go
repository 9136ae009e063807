// Package marker resolves the line comment marker to insert for a language.
package marker

import (
	"errors"
	"fmt"
	"sort"

	"github.com/iancoleman/orderedmap"
)

// DefaultMarker replaces an empty configured marker.
const DefaultMarker = ":"

// ErrUnsupportedLanguage is returned for a language with no line comment marker.
var ErrUnsupportedLanguage = errors.New("not compatible language")

// Language pairs a host language identifier with its line comment marker.
type Language struct {
	ID     string
	Marker string
}

// builtin lists the recognized language identifiers in display order.
// XML, XAML, HTML and CSS have no line comment syntax and are left out.
var builtin = []Language{
	{"CSharp", "//"},
	{"C/C++", "//"},
	{"TypeScript", "//"},
	{"JavaScript", "//"},
	{"F#", "//"},
	{"PowerShell", "#"},
	{"Python", "#"},
	{"SQL Server Tools", "--"},
	{"Basic", "'"},
}

// Languages returns the built-in table.
func Languages() []Language {
	out := make([]Language, len(builtin))
	copy(out, builtin)
	return out
}

// Resolve looks up languageID in the built-in table.
func Resolve(languageID string) (string, error) {
	for _, l := range builtin {
		if l.ID == languageID {
			return l.Marker, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, languageID)
}

// Coerce returns marker, or DefaultMarker when marker is empty.
func Coerce(marker string) string {
	if marker == "" {
		return DefaultMarker
	}
	return marker
}

// Resolver resolves markers from the built-in table plus user overrides.
// Overrides take precedence and may add languages the table does not know.
type Resolver struct {
	overrides map[string]string
}

// NewResolver creates a resolver with the given overrides.
// Override values may name a preset. Empty values are ignored.
func NewResolver(overrides map[string]string) *Resolver {
	r := &Resolver{overrides: make(map[string]string, len(overrides))}
	for id, m := range overrides {
		if m = ResolvePreset(m); m != "" {
			r.overrides[id] = m
		}
	}
	return r
}

// Resolve returns the marker for languageID.
func (r *Resolver) Resolve(languageID string) (string, error) {
	if r != nil {
		if m, ok := r.overrides[languageID]; ok {
			return m, nil
		}
	}
	return Resolve(languageID)
}

// Table returns every resolvable language and its marker. Built-in languages
// come first in table order, then override-only languages sorted by id.
func (r *Resolver) Table() *orderedmap.OrderedMap {
	table := orderedmap.New()
	for _, l := range builtin {
		table.Set(l.ID, l.Marker)
	}
	if r == nil {
		return table
	}

	var extra []string
	for id, m := range r.overrides {
		if _, ok := table.Get(id); ok {
			table.Set(id, m)
			continue
		}
		extra = append(extra, id)
	}
	sort.Strings(extra)
	for _, id := range extra {
		table.Set(id, r.overrides[id])
	}
	return table
}
