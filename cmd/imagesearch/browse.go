package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/imagesearch/internal/logger"
	"github.com/alexisbeaulieu97/imagesearch/internal/preferences"
	"github.com/alexisbeaulieu97/imagesearch/internal/tui/browser"
)

var errNotTerminal = errors.New("standard input and output must be a terminal")

func newBrowseCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [query]",
		Short: "Launch the interactive image browser",
		Long:  `Launch the interactive TUI. When a query is given it is searched immediately.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(flags, strings.Join(args, " "))
		},
	}

	return cmd
}

func runBrowse(flags *rootFlags, query string) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return newCommandError("launch browser", "no terminal attached", errNotTerminal, "Use 'imagesearch search <query>' for non-interactive output")
	}

	app, err := newAppContext(flags, logTarget{file: true})
	if err != nil {
		return err
	}
	defer app.Close()

	prefsPath, err := defaultPreferencesPath()
	if err != nil {
		return newCommandError("load preferences", "home directory", err, "Set HOME to a writable directory")
	}
	var notice string
	prefs, err := preferences.NewStore(prefsPath)
	if err != nil {
		// The browser still works with the default theme.
		app.Logger.Error(err, "preferences unavailable", logger.Fields{"path": prefsPath})
		prefs = nil
		notice = fmt.Sprintf("Preferences unavailable, using the %s theme", preferences.DefaultTheme)
	}

	app.Logger.Info("launching browser", logger.Fields{"initial_query": query})

	m := browser.NewModel(browser.Options{
		Fetcher:      app.Client,
		Preferences:  prefs,
		Logger:       app.Logger,
		Columns:      app.Config.UI.GridColumns,
		ASCII:        app.Config.UI.ASCII,
		InitialQuery: query,
		Notice:       notice,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		app.Logger.Error(err, "browser execution failed")
		return newCommandError("run browser", "terminal session", err, "Check the log file for details")
	}

	app.Logger.Info("browser closed")
	return nil
}

func isTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}
