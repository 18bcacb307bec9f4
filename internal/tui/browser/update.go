package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/imagesearch/internal/logger"
	"github.com/alexisbeaulieu97/imagesearch/internal/session"
)

const (
	minWidth  = 60
	minHeight = 20
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.styles = NewStyles(m.theme).WithMaxWidth(m.width)
		m.spinner.Style = m.styles.Spinner
		m.input.Width = max(10, m.width-10)

		// Check minimum terminal size
		if m.width < minWidth || m.height < minHeight {
			m.showError = true
			m.errorMsg = fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
				m.width, m.height, minWidth, minHeight)
		} else if m.showError && strings.HasPrefix(m.errorMsg, "Terminal too small") {
			// Clear size error if terminal is now big enough
			m.showError = false
			m.errorMsg = ""
		}

		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	// Spinner tick only while something is loading
	case spinner.TickMsg:
		if m.state.View() != session.ViewLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	// Fetch messages
	case ImagesFetchedMsg:
		next, applied := m.state.Resolve(msg.Token, msg.Results)
		if !applied {
			m.log.Debug("discarded stale response", logger.Fields{"token": msg.Token, "current": m.state.Token()})
			return m, nil
		}
		m.state = next
		m.cursor = 0
		m.log.Debug("results applied", logger.Fields{
			"token":   msg.Token,
			"query":   msg.Results.Query,
			"page":    msg.Results.Page,
			"results": msg.Results.Len(),
		})
		return m, nil

	case ImagesFailedMsg:
		next, applied := m.state.Fail(msg.Token, msg.Err)
		if !applied {
			m.log.Debug("discarded stale failure", logger.Fields{"token": msg.Token, "current": m.state.Token()})
			return m, nil
		}
		m.state = next
		m.log.Error(msg.Err, "image fetch failed", logger.Fields{
			"token": msg.Token,
			"query": msg.Query,
			"page":  msg.Page,
		})
		return m, nil

	case ImagesCancelledMsg:
		m.log.Debug("fetch cancelled", logger.Fields{"token": msg.Token})
		return m, nil

	// Preference messages
	case ThemeSavedMsg:
		if msg.Err != nil {
			m.log.Error(msg.Err, "failed to save theme", logger.Fields{"theme": string(msg.Mode)})
			m.showError = true
			m.errorMsg = fmt.Sprintf("Failed to save theme: %s", msg.Err.Error())
		}
		return m, nil

	// Error messages
	case ErrorMsg:
		m.showError = true
		m.errorMsg = msg.Message
		return m, nil

	case ClearErrorMsg:
		m.showError = false
		m.errorMsg = ""
		return m, nil
	}

	// Anything else (cursor blink) belongs to the search box.
	if m.focus == FocusSearch {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKeyPress handles keyboard input based on focus and the lightbox
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "ctrl+t":
		return m.toggleTheme()
	}

	if m.state.LightboxOpen() {
		return m.handleLightboxKeys(msg)
	}

	switch m.focus {
	case FocusSearch:
		return m.handleSearchKeys(msg)
	default:
		return m.handleGridKeys(msg)
	}
}

// handleSearchKeys handles keys while typing a query
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	// Submit
	case "enter":
		m.state = m.state.Search(m.input.Value())
		m.input.SetValue(m.state.Query())
		m.input.CursorEnd()
		var cmd tea.Cmd
		m, cmd = m.syncFetch()
		if m.state.Query() != "" {
			m.setFocus(FocusGrid)
		}
		return m, cmd

	// Clean
	case "ctrl+l":
		return m.clean()

	// Leave the search box
	case "esc", "tab":
		m.setFocus(FocusGrid)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleGridKeys handles keys while browsing results
func (m Model) handleGridKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	// Quit
	case "q":
		return m.quit()

	// Navigation
	case "left", "h":
		m.MoveCursor(-1)
		return m, nil

	case "right", "l":
		m.MoveCursor(1)
		return m, nil

	case "up", "k":
		m.MoveCursor(-m.columns)
		return m, nil

	case "down", "j":
		m.MoveCursor(m.columns)
		return m, nil

	// Open the lightbox
	case "enter", " ":
		m.state = m.state.Select(m.cursor)
		return m, nil

	// Pagination
	case "n", "pgdown":
		if !m.state.ShowPager() {
			return m, nil
		}
		m.state = m.state.NextPage()
		return m.syncFetch()

	case "p", "pgup":
		if !m.state.ShowPager() || !m.state.CanPreviousPage() {
			return m, nil
		}
		m.state = m.state.PreviousPage()
		return m.syncFetch()

	// Search box
	case "/", "tab":
		cmd := m.setFocus(FocusSearch)
		return m, cmd

	case "c":
		return m.clean()

	case "t":
		return m.toggleTheme()

	// Clear error banner
	case "x", "esc":
		if m.showError {
			return m, clearErrorCmd
		}
		return m, nil
	}

	return m, nil
}

// handleLightboxKeys handles keys while an image is open
func (m Model) handleLightboxKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.quit()

	case "esc", "backspace", "enter":
		m.state = m.state.Close()
		return m, nil

	case "right", "l", "n":
		m.state = m.state.Next()

	case "left", "h", "p":
		m.state = m.state.Previous()
	}

	if idx, open := m.state.Lightbox().Index(); open {
		m.cursor = idx
	}
	return m, nil
}

// clean empties the search box and resets the session.
func (m Model) clean() (tea.Model, tea.Cmd) {
	m.input.Reset()
	m.state = m.state.Clean()
	var cmd tea.Cmd
	m, cmd = m.syncFetch()
	focusCmd := m.setFocus(FocusSearch)
	return m, tea.Batch(cmd, focusCmd)
}

// toggleTheme flips the theme and persists it in the background.
func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	m.theme = m.theme.Toggle()
	m.themeGen++
	m.styles = NewStyles(m.theme).WithMaxWidth(m.width)
	m.spinner.Style = m.styles.Spinner
	m.log.Debug("theme toggled", logger.Fields{"theme": string(m.theme), "generation": m.themeGen})
	return m, saveThemeCmd(m.prefs, m.theme, m.themeGen)
}
