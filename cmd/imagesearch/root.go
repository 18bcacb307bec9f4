package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	apiURL     string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "imagesearch",
		Short:         "imagesearch browses an image search backend from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the browser
			if len(args) == 0 {
				return runBrowse(flags, "")
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML or TOML config file")
	cmd.PersistentFlags().StringVar(&flags.apiURL, "api-url", "", "Base URL of the image search backend")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newSearchCmd(flags))
	cmd.AddCommand(newThemeCmd())
	cmd.AddCommand(newHealthCmd(flags))
	cmd.AddCommand(newMockAPICmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
