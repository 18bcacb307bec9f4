package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set through -ldflags at release time; empty values fall back to the module build info.
var (
	version = ""
	commit  = ""
	date    = ""
)

type buildDetails struct {
	Version string
	Commit  string
	Date    string
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := resolveBuildDetails(debug.ReadBuildInfo)
			fmt.Fprintf(cmd.OutOrStdout(), "imagesearch %s\ncommit: %s\nbuilt: %s\n", info.Version, info.Commit, info.Date)
			return nil
		},
	}

	return cmd
}

func resolveBuildDetails(read func() (*debug.BuildInfo, bool)) buildDetails {
	details := buildDetails{Version: version, Commit: commit, Date: date}

	if bi, ok := read(); ok && bi != nil {
		if details.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			details.Version = bi.Main.Version
		}
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				if details.Commit == "" {
					details.Commit = shortRevision(setting.Value)
				}
			case "vcs.time":
				if details.Date == "" {
					details.Date = setting.Value
				}
			}
		}
	}

	if details.Version == "" {
		details.Version = "dev"
	}
	if details.Commit == "" {
		details.Commit = "none"
	}
	if details.Date == "" {
		details.Date = "unknown"
	}
	return details
}

func shortRevision(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}
