package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List languages with a line comment marker",
	Long: `List every language id linemark can resolve, with its marker.

Built-in languages come first, followed by languages added in the settings file.

Example:
  linemark languages
  linemark languages --json`,
	Args: cobra.NoArgs,
	RunE: runLanguages,
}

var languagesJSON bool

func init() {
	languagesCmd.Flags().BoolVar(&languagesJSON, "json", false, "Print as a JSON object")
}

func runLanguages(cmd *cobra.Command, args []string) error {
	table := newResolver().Table()
	out := cmd.OutOrStdout()

	if languagesJSON {
		data, err := json.MarshalIndent(table, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal languages: %w", err)
		}
		_, err = fmt.Fprintf(out, "%s\n", data)
		return err
	}

	for _, id := range table.Keys() {
		m, _ := table.Get(id)
		fmt.Fprintf(out, "%-18s %s\n", id, m)
	}
	return nil
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <language>",
	Short: "Print the marker for a language",
	Long: `Print the line comment marker used for a language id.

Fails with "not compatible language" when the language has no marker.

Example:
  linemark resolve Python`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	m, err := newResolver().Resolve(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), m)
	return err
}
