// Package cmd provides the CLI commands for linemark.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thirteen37/linemark/internal/config"
	"github.com/thirteen37/linemark/internal/log"
	"github.com/thirteen37/linemark/internal/marker"
)

var rootCmd = &cobra.Command{
	Use:   "linemark",
	Short: "Insert a comment marker at the start of every selected line",
	Long: `linemark comments out whole lines by inserting a marker as the very first
character of every line spanned by a selection.

A partial selection is first expanded to whole lines. The marker comes from the
document language (CSharp, Python, Basic, ...) or, in manual mode, from the
configured marker. Line endings ("\n", "\r\n", "\r") are preserved exactly.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
}

var (
	cfgFile  string
	debug    bool
	logLevel string
	settings *config.Settings
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.ErrorErr(log.CatCLI, "command failed", err)
		fmt.Fprintf(os.Stderr, "linemark: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"settings file (default: ~/.config/linemark/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "debug",
		"lowest level written when logging is on (debug, info, warn, error)")

	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(languageCmd)
	rootCmd.AddCommand(markerCmd)
	rootCmd.AddCommand(initCmd)
}

// initConfig loads settings and applies LINEMARK_* environment overrides.
func initConfig(cmd *cobra.Command, args []string) error {
	viper.SetEnvPrefix("linemark")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("debug", cmd.Flags().Lookup("debug"))
	_ = viper.BindPFlag("config", cmd.Flags().Lookup("config"))
	_ = viper.BindPFlag("log-level", cmd.Flags().Lookup("log-level"))

	level, err := log.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return err
	}
	if viper.GetBool("debug") {
		log.Init(cmd.ErrOrStderr())
		log.SetMinLevel(level)
	} else {
		log.SetEnabled(false)
	}

	path, err := settingsPath()
	if err != nil {
		return err
	}

	settings, err = config.LoadOrDefaults(path)
	if err != nil {
		return err
	}
	log.Debug(log.CatConfig, "loaded settings", "path", path, "marker", settings.Marker,
		"languages", len(settings.Languages))

	viper.SetDefault("marker", settings.Marker)
	return nil
}

// settingsPath returns --config, LINEMARK_CONFIG, or the discovered default file.
func settingsPath() (string, error) {
	if p := viper.GetString("config"); p != "" {
		return p, nil
	}
	return config.Discover()
}

// manualMarker returns the configured manual marker; LINEMARK_MARKER wins over the file.
func manualMarker() string {
	return viper.GetString("marker")
}

// newResolver builds a marker resolver from the loaded language overrides.
func newResolver() *marker.Resolver {
	return marker.NewResolver(settings.Languages)
}
