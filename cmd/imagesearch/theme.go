package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/imagesearch/internal/preferences"
)

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the persisted colour theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := ""
			if len(args) == 1 {
				action = args[0]
			}
			return runTheme(cmd, action)
		},
	}

	return cmd
}

func runTheme(cmd *cobra.Command, action string) error {
	path, err := defaultPreferencesPath()
	if err != nil {
		return newCommandError("load preferences", "home directory", err, "Set HOME to a writable directory.")
	}

	store, err := preferences.NewStore(path)
	if err != nil {
		return newCommandError("load preferences", path, err, "Delete the file to reset preferences.")
	}

	switch action {
	case "":
		fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", store.Theme())
		return nil
	case "toggle":
		mode, err := store.ToggleTheme()
		if err != nil {
			return newCommandError("save theme", path, err, "Check file permissions and try again.")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", mode)
		return nil
	}

	mode, err := preferences.ParseThemeMode(action)
	if err != nil {
		return newCommandError("set theme", action, err, "Use light, dark or toggle.")
	}
	if err := store.SetTheme(mode); err != nil {
		return newCommandError("set theme", action, err, "Use light, dark or toggle.")
	}
	if err := store.Save(); err != nil {
		return newCommandError("save theme", path, err, "Check file permissions and try again.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", mode)
	return nil
}
