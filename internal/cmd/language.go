package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thirteen37/linemark/internal/log"
	"github.com/thirteen37/linemark/internal/marker"
)

var languageCmd = &cobra.Command{
	Use:   "language",
	Short: "Manage language marker overrides",
}

var languageSetCmd = &cobra.Command{
	Use:   "set <language> <marker>",
	Short: "Set the marker for a language",
	Long: `Set the line comment marker for a language id in the settings file.

The marker may be a literal or a preset name (shell, c, lua, sql, vim,
semicolon, basic). The language does not need to be a built-in one.

Example:
  linemark language set Go c
  linemark language set Lisp ";"`,
	Args: cobra.ExactArgs(2),
	RunE: runLanguageSet,
}

var languageRemoveCmd = &cobra.Command{
	Use:   "remove <language>",
	Short: "Remove a language override",
	Long: `Remove a language override from the settings file.
Built-in languages fall back to their default marker.

Example:
  linemark language remove Go`,
	Args: cobra.ExactArgs(1),
	RunE: runLanguageRemove,
}

func init() {
	languageCmd.AddCommand(languageSetCmd)
	languageCmd.AddCommand(languageRemoveCmd)
}

func runLanguageSet(cmd *cobra.Command, args []string) error {
	id, value := args[0], args[1]
	if marker.ResolvePreset(value) == "" {
		return fmt.Errorf("marker for %s must not be empty", id)
	}

	if !settings.SetLanguage(id, value) {
		fmt.Fprintf(cmd.OutOrStdout(), "Language %s already uses %q\n", id, value)
		return nil
	}
	if err := saveSettings(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %q\n", id, value)
	return nil
}

func runLanguageRemove(cmd *cobra.Command, args []string) error {
	id := args[0]

	if !settings.RemoveLanguage(id) {
		fmt.Fprintf(cmd.OutOrStdout(), "Language %s has no override\n", id)
		return nil
	}
	if err := saveSettings(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", id)
	return nil
}

// saveSettings writes the loaded settings back to the settings file.
func saveSettings() error {
	path, err := settingsPath()
	if err != nil {
		return err
	}
	if err := settings.Save(path); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	log.Debug(log.CatConfig, "saved settings", "path", path)
	return nil
}
