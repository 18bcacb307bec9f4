package browser

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/imagesearch/internal/preferences"
	"github.com/alexisbeaulieu97/imagesearch/internal/search"
	"github.com/alexisbeaulieu97/imagesearch/internal/session"
)

// fetchImagesCmd runs one search request asynchronously
func fetchImagesCmd(ctx context.Context, req session.Request, fetcher search.Fetcher) tea.Cmd {
	return func() tea.Msg {
		results, err := fetcher.FetchImages(ctx, req.Query, req.Page)
		if err != nil {
			// Context cancellation
			if ctx.Err() != nil {
				return ImagesCancelledMsg{Token: req.Token}
			}

			return ImagesFailedMsg{
				Token: req.Token,
				Query: req.Query,
				Page:  req.Page,
				Err:   err,
			}
		}

		return ImagesFetchedMsg{
			Token:   req.Token,
			Results: results,
		}
	}
}

// saveThemeCmd persists the theme mode. generation orders the saves, so a
// command that runs late cannot overwrite a newer toggle.
func saveThemeCmd(store *preferences.Store, mode preferences.ThemeMode, generation uint64) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return ThemeSavedMsg{Mode: mode, Err: store.SaveTheme(mode, generation)}
	}
}

// showErrorCmd raises the error banner
func showErrorCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Message: message}
	}
}

// clearErrorCmd dismisses the error banner
func clearErrorCmd() tea.Msg {
	return ClearErrorMsg{}
}
