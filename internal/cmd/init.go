package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thirteen37/linemark/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default settings file",
	Long: `Create a settings file with the default manual marker.

The file is written to --config, or to ~/.config/linemark/config.<format>.
An existing file is left alone unless --force is given.

Example:
  linemark init
  linemark init --format ini --marker shell`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var (
	initFormat string
	initMarker string
	initForce  bool
)

func init() {
	initCmd.Flags().StringVar(&initFormat, "format", "toml", "Settings format (toml, ini, yaml)")
	initCmd.Flags().StringVar(&initMarker, "marker", "", "Initial manual marker (default \":\")")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing settings file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := initPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	s := config.Defaults()
	s.SetMarker(initMarker)
	if err := s.Save(path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", path)
	return nil
}

// initPath returns --config as given, or the default path with the
// extension of --format.
func initPath() (string, error) {
	if p := viper.GetString("config"); p != "" {
		return p, nil
	}

	switch initFormat {
	case "toml", "ini", "yaml":
	default:
		return "", fmt.Errorf("unsupported format %q (use toml, ini or yaml)", initFormat)
	}

	path, err := config.DefaultPath()
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + initFormat, nil
}
