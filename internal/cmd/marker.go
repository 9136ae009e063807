package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var markerCmd = &cobra.Command{
	Use:   "marker [value]",
	Short: "Show or set the manual marker",
	Long: `Show or set the marker used by "comment --manual".

The value may be a literal or a preset name. An empty value resets the marker
to ":". LINEMARK_MARKER overrides the stored value.

Example:
  linemark marker
  linemark marker "REM "
  linemark marker ""`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMarker,
}

func runMarker(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), manualMarker())
		return err
	}

	settings.SetMarker(args[0])
	if err := saveSettings(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Marker set to %q\n", settings.Marker)
	return nil
}
