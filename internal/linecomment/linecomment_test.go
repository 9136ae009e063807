package linecomment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thirteen37/linemark/internal/document"
	"github.com/thirteen37/linemark/internal/marker"
	"github.com/thirteen37/linemark/internal/selection"
)

func sel(startLine, startCol, endLine, endCol int) selection.Selection {
	return selection.Selection{
		Start: selection.Position{Line: startLine, Col: startCol},
		End:   selection.Position{Line: endLine, Col: endCol},
	}
}

func TestApply(t *testing.T) {
	c := New(marker.NewResolver(nil), ":")

	tests := []struct {
		name string
		text string
		req  Request
		want string
	}{
		{
			name: "single line mid selection",
			text: "int a;\nint b;\nint c;\n",
			req:  Request{Selection: sel(1, 2, 1, 4), Language: "CSharp"},
			want: "int a;\n//int b;\nint c;\n",
		},
		{
			// The range ends right after the second terminator, so the marker
			// emitted after it lands at the start of the third line.
			name: "multi line ending at line start",
			text: "a = 1\nb = 2\nc = 3\n",
			req:  Request{Selection: sel(0, 3, 2, 0), Language: "Python"},
			want: "#a = 1\n#b = 2\n#c = 3\n",
		},
		{
			name: "multi line ending mid line",
			text: "a = 1\nb = 2\nc = 3\n",
			req:  Request{Selection: sel(0, 3, 2, 1), Language: "Python"},
			want: "#a = 1\n#b = 2\n#c = 3\n",
		},
		{
			name: "mixed terminators preserved",
			text: "A\r\nB\nC\rD",
			req:  Request{Selection: sel(3, 1, 0, 0), Language: "SQL Server Tools"},
			want: "--A\r\n--B\n--C\r--D",
		},
		{
			name: "box selection",
			text: "x = 1\ny = 2\n",
			req: Request{
				Selection: selection.Selection{
					Start: selection.Position{Line: 0, Col: 2},
					End:   selection.Position{Line: 1, Col: 3},
					Mode:  selection.ModeBox,
				},
				Language: "Basic",
			},
			want: "'x = 1\n'y = 2\n",
		},
		{
			name: "empty line",
			text: "a\n\nb",
			req:  Request{Selection: sel(1, 0, 1, 0), Language: "JavaScript"},
			want: "a\n//\nb",
		},
		{
			name: "indented line gets marker at column zero",
			text: "\tif x {\n",
			req:  Request{Selection: sel(0, 3, 0, 3), Language: "TypeScript"},
			want: "//\tif x {\n",
		},
		{
			name: "manual mode uses configured marker",
			text: "key=value\n",
			req:  Request{Selection: sel(0, 0, 0, 0), Manual: true},
			want: ":key=value\n",
		},
		{
			name: "manual mode with preset override",
			text: "set number\n",
			req:  Request{Selection: sel(0, 0, 0, 0), Manual: true, Marker: "vim"},
			want: "\"set number\n",
		},
		{
			name: "manual mode ignores language",
			text: "<a/>",
			req:  Request{Selection: sel(0, 0, 0, 0), Manual: true, Language: "XML"},
			want: ":<a/>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := document.New(tt.text)

			res, err := c.Apply(doc, tt.req)
			require.NoError(t, err)

			assert.Equal(t, tt.want, res.Document.String())
			assert.Equal(t, tt.text, doc.String(), "input document must not change")
		})
	}
}

func TestApply_Result(t *testing.T) {
	c := New(nil, "")
	doc := document.New("one\ntwo\nthree")

	res, err := c.Apply(doc, Request{Selection: sel(1, 1, 0, 2), Language: "F#"})
	require.NoError(t, err)

	assert.Equal(t, "//", res.Marker)
	assert.Equal(t, selection.LineRange{
		Top:    selection.Position{Line: 0, Col: 0},
		Bottom: selection.Position{Line: 1, Col: 3},
	}, res.Range)
	assert.Equal(t, "one\ntwo", res.Original)
	assert.Equal(t, "//one\n//two", res.Replacement)
}

func TestApply_UnsupportedLanguage(t *testing.T) {
	c := New(marker.NewResolver(nil), ":")

	res, err := c.Apply(document.New("<a/>"), Request{Language: "XML"})
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	assert.Nil(t, res)
}

func TestApply_Override(t *testing.T) {
	c := New(marker.NewResolver(map[string]string{"Go": "c"}), ":")

	res, err := c.Apply(document.New("package main"), Request{Language: "Go"})
	require.NoError(t, err)
	assert.Equal(t, "//package main", res.Document.String())
}

func TestApply_MissingContext(t *testing.T) {
	c := New(nil, ":")

	_, err := c.Apply(nil, Request{Language: "CSharp"})
	assert.ErrorIs(t, err, ErrMissingContext)
}

func TestApply_SelectionOutOfRange(t *testing.T) {
	c := New(nil, ":")
	doc := document.New("a\nb\nc")

	tests := []struct {
		name string
		sel  selection.Selection
	}{
		{"caret past end", sel(4, 0, 4, 0)},
		{"bottom past end at line start", sel(0, 0, 8, 0)},
		{"bottom past end mid line", sel(0, 0, 8, 1)},
		{"reversed with start past end", sel(8, 1, 0, 0)},
		{"negative column", sel(0, -1, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := c.Apply(doc, Request{Selection: tt.sel, Language: "Python"})
			assert.ErrorIs(t, err, document.ErrOutOfRange)
			assert.Nil(t, res)
		})
	}
}

func TestMarker_EmptyManualFallsBack(t *testing.T) {
	c := New(nil, "")

	got, err := c.Marker(Request{Manual: true})
	require.NoError(t, err)
	assert.Equal(t, marker.DefaultMarker, got)
}
