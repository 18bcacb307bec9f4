package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/imagesearch/internal/session"
	"github.com/alexisbeaulieu97/imagesearch/internal/tui/components"
)

const (
	PromptText    = "Enter a query to search for images."
	LoadingText   = "Loading images..."
	noResultsText = "No images found for %q"
)

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var content strings.Builder

	// Render header
	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	// Render error banner if present
	if m.showError {
		content.WriteString(m.renderErrorBanner())
		content.WriteString("\n")
	}

	if m.state.LightboxOpen() {
		content.WriteString(m.renderLightbox())
		content.WriteString("\n")
		content.WriteString(m.renderFooter())
		return content.String()
	}

	content.WriteString(m.renderSearchBox())
	content.WriteString("\n")

	content.WriteString(m.renderBody())
	content.WriteString("\n")

	if m.state.ShowPager() {
		content.WriteString(m.renderPager())
		content.WriteString("\n")
	}

	// Render footer
	content.WriteString(m.renderFooter())

	return content.String()
}

// renderHeader renders the title and theme indicator
func (m Model) renderHeader() string {
	title := m.styles.Title.Render("Image Search")

	indicator := "☾ dark"
	if !m.theme.IsDark() {
		indicator = "☀ light"
	}
	if m.ascii {
		indicator = fmt.Sprintf("[%s]", m.theme)
	}

	return m.styles.Header.Render(lipgloss.JoinHorizontal(
		lipgloss.Top,
		title,
		lipgloss.NewStyle().Foreground(m.styles.Palette.Muted).Render(indicator),
	))
}

// renderSearchBox renders the query input
func (m Model) renderSearchBox() string {
	style := m.styles.Search
	if m.focus == FocusSearch {
		style = m.styles.SearchFocus
	}
	return style.Render(m.input.View())
}

// renderBody renders the area under the search box for the current view kind
func (m Model) renderBody() string {
	switch m.state.View() {
	case session.ViewLoading:
		return m.styles.Empty.Render(fmt.Sprintf("%s %s", m.spinner.View(), LoadingText))
	case session.ViewError:
		return m.styles.Failure.Render(m.state.Fetch().Reason)
	case session.ViewNoResults:
		return m.styles.Empty.Render(fmt.Sprintf(noResultsText, m.state.Query()))
	case session.ViewGrid:
		return m.renderGrid()
	default:
		return m.styles.Empty.Render(PromptText)
	}
}

// renderGrid renders the result cards in rows
func (m Model) renderGrid() string {
	results := m.state.Fetch().Results
	items := m.state.Results()

	summary := components.NewSummary(components.SummaryData{
		Query: results.Query,
		Page:  m.state.Page(),
		Count: len(items),
		Total: results.Total,
	})

	cardWidth := (m.width - 2) / m.columns

	var rows []string
	for start := 0; start < len(items); start += m.columns {
		end := min(start+m.columns, len(items))

		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			card := components.NewCard(items[i], i).
				Width(cardWidth).
				Selected(i == m.cursor && m.focus == FocusGrid).
				ASCII(m.ascii).
				WithStyles(m.styles.Card)
			cards = append(cards, card.View())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	// Keep the cursor row visible on short terminals
	visibleRows := max(1, (m.height-14)/5)
	cursorRow := m.cursor / m.columns
	first := 0
	if cursorRow >= visibleRows {
		first = cursorRow - visibleRows + 1
	}
	last := min(first+visibleRows, len(rows))

	visible := rows[first:last]
	muted := lipgloss.NewStyle().Foreground(m.styles.Palette.Muted)
	if first > 0 {
		visible = append([]string{muted.Render("▲ More above")}, visible...)
	}
	if last < len(rows) {
		visible = append(visible, muted.Render("▼ More below"))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.Summary.Render(summary.View()),
		lipgloss.JoinVertical(lipgloss.Left, visible...),
	)
}

// renderPager renders the page controls
func (m Model) renderPager() string {
	return components.NewPager(m.state.Page(), m.state.CanPreviousPage()).
		ASCII(m.ascii).
		WithStyles(m.styles.Pager).
		View()
}

// renderLightbox renders the selected image on its own
func (m Model) renderLightbox() string {
	item, idx, ok := m.state.Selected()
	if !ok {
		return ""
	}
	total := len(m.state.Results())

	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			m.styles.Label.Render(label),
			m.styles.Value.Render(value),
		)
	}

	urlWidth := max(20, m.width-20)
	lines := []string{
		m.styles.Title.Render(fmt.Sprintf("Image %d/%d", idx+1, total)),
		"",
		row("URL", components.Truncate(item.ImageURL, urlWidth, m.ascii)),
		row("ID", fmt.Sprintf("%d", item.ImageID)),
		components.NewScoreBar(30).View(item.Score),
	}

	return m.styles.Lightbox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderFooter renders the footer with keyboard shortcuts
func (m Model) renderFooter() string {
	var hints []string

	switch {
	case m.state.LightboxOpen():
		hints = []string{"←/→: previous/next", "esc: close"}
	case m.focus == FocusSearch:
		hints = []string{"enter: search", "ctrl+l: clean", "tab: results"}
	default:
		hints = []string{"arrows: move", "enter: open"}
		if m.state.ShowPager() {
			if m.state.CanPreviousPage() {
				hints = append(hints, "p: previous page")
			}
			hints = append(hints, "n: next page")
		}
		hints = append(hints, "/: search", "c: clean")
	}

	if m.ascii {
		for i, hint := range hints {
			hints[i] = strings.NewReplacer("←", "left", "→", "right").Replace(hint)
		}
	}

	// Add error dismissal hint if error is showing
	if m.showError && !m.state.LightboxOpen() && m.focus == FocusGrid {
		hints = append(hints, "x: dismiss error")
	}

	hints = append(hints, "ctrl+t: theme", "q: quit")
	if m.focus == FocusSearch && !m.state.LightboxOpen() {
		hints[len(hints)-1] = "ctrl+c: quit"
	}

	return m.styles.Footer.Render(strings.Join(hints, "  •  "))
}

// renderErrorBanner renders an error message banner
func (m Model) renderErrorBanner() string {
	return components.ErrorAlert(m.errorMsg).
		WithStyle(m.styles.ErrorBanner).
		ASCII(m.ascii).
		View()
}
