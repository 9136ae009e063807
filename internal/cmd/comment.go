package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thirteen37/linemark/internal/document"
	"github.com/thirteen37/linemark/internal/linecomment"
	"github.com/thirteen37/linemark/internal/log"
	"github.com/thirteen37/linemark/internal/marker"
	"github.com/thirteen37/linemark/internal/selection"
)

var commentCmd = &cobra.Command{
	Use:   "comment <file>",
	Short: "Comment out the lines spanned by a selection",
	Long: `Comment out every line spanned by a selection.

The selection runs from --from to --to, each given as a 1-based line:col (col
defaults to 1) or as @offset, a 0-based byte offset into the input.
It is expanded to whole lines before the marker is inserted. A selection that
spans several lines and ends at column 1 does not include the line it ends on.

The marker is resolved from --language, or from the file extension when
--language is not given. With --manual the configured marker is used instead;
--marker overrides it for one run.

Use "-" to read from stdin. The result goes to stdout unless --write is given.

Example:
  linemark comment --from 3 --to 7:4 main.cs
  linemark comment --from 2:5 --manual --marker shell -w deploy.conf
  cat query.sql | linemark comment --from 1 --to 10 --language "SQL Server Tools" -`,
	Args: cobra.ExactArgs(1),
	RunE: runComment,
}

var (
	fromPos      string
	toPos        string
	boxMode      bool
	languageID   string
	manualMode   bool
	markerValue  string
	writeInPlace bool
	showDiff     bool
)

func init() {
	commentCmd.Flags().StringVar(&fromPos, "from", "", "Selection start as line[:col] or @offset (required)")
	commentCmd.Flags().StringVar(&toPos, "to", "", "Selection end as line[:col] or @offset (default: --from)")
	commentCmd.Flags().BoolVar(&boxMode, "box", false, "Treat the selection as a box (rectangular) selection")
	commentCmd.Flags().StringVarP(&languageID, "language", "l", "", "Language id (default: detected from file extension)")
	commentCmd.Flags().BoolVarP(&manualMode, "manual", "m", false, "Use the configured marker instead of the language marker")
	commentCmd.Flags().StringVar(&markerValue, "marker", "", "Marker or preset name for this run (implies --manual)")
	commentCmd.Flags().BoolVarP(&writeInPlace, "write", "w", false, "Write the result back to the file")
	commentCmd.Flags().BoolVar(&showDiff, "diff", false, "Print a diff of the changed lines instead of the result")

	commentCmd.MarkFlagsMutuallyExclusive("write", "diff")
}

func runComment(cmd *cobra.Command, args []string) error {
	filename := args[0]

	if fromPos == "" {
		return fmt.Errorf("%w: --from is required", linecomment.ErrMissingContext)
	}

	// Read document
	data, err := readInput(cmd, filename)
	if err != nil {
		return err
	}
	doc := document.New(string(data))

	sel, err := parseSelection(doc)
	if err != nil {
		return err
	}

	req := linecomment.Request{
		Selection: sel,
		Language:  languageID,
		Manual:    manualMode || markerValue != "",
		Marker:    markerValue,
	}
	if req.Language == "" && !req.Manual {
		req.Language = marker.DetectLanguage(filename)
	}

	c := linecomment.New(newResolver(), manualMarker())
	res, err := c.Apply(doc, req)
	if err != nil {
		return err
	}
	log.Info(log.CatCLI, "commented lines", "file", filename, "marker", fmt.Sprintf("%q", res.Marker),
		"from", res.Range.Top, "to", res.Range.Bottom, "document_lines", doc.LineCount())

	out := res.Document.String()

	switch {
	case showDiff:
		diff, err := renderDiff(filename, doc, res)
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), diff)
		return err
	case writeInPlace && filename != "-":
		return writeFile(filename, out)
	default:
		_, err = io.WriteString(cmd.OutOrStdout(), out)
		return err
	}
}

// parseSelection builds the selection from --from, --to and --box.
func parseSelection(doc *document.Document) (selection.Selection, error) {
	start, err := parsePosition(doc, fromPos)
	if err != nil {
		return selection.Selection{}, fmt.Errorf("invalid --from: %w", err)
	}

	end := start
	if toPos != "" {
		end, err = parsePosition(doc, toPos)
		if err != nil {
			return selection.Selection{}, fmt.Errorf("invalid --to: %w", err)
		}
	}

	sel := selection.Selection{Start: start, End: end}
	if boxMode {
		sel.Mode = selection.ModeBox
	}
	return sel, nil
}

// parsePosition accepts line[:col] or @offset, a 0-based byte offset into doc.
func parsePosition(doc *document.Document, s string) (selection.Position, error) {
	rest, ok := strings.CutPrefix(s, "@")
	if !ok {
		return selection.ParsePosition(s)
	}
	offset, err := strconv.Atoi(rest)
	if err != nil || offset < 0 {
		return selection.Position{}, fmt.Errorf("invalid offset %q", s)
	}
	return doc.Position(offset), nil
}

func readInput(cmd *cobra.Command, filename string) ([]byte, error) {
	if filename == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return data, nil
}

// writeFile replaces filename's content, keeping its permissions.
func writeFile(filename, content string) error {
	info, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", filename, err)
	}
	if err := os.WriteFile(filename, []byte(content), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
