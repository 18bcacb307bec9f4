package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/imagesearch/internal/search"
)

const minCardWidth = 16

// CardStyles controls how a card renders.
type CardStyles struct {
	Border   lipgloss.Style
	Selected lipgloss.Style
	Title    lipgloss.Style
	Muted    lipgloss.Style
}

// Card renders one result item.
type Card struct {
	item     search.ResultItem
	position int
	width    int
	selected bool
	ascii    bool
	styles   CardStyles
}

// NewCard creates a card for item shown at the 0-based position.
func NewCard(item search.ResultItem, position int) Card {
	base := lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).Padding(0, 1)
	return Card{
		item:     item,
		position: position,
		width:    28,
		styles: CardStyles{
			Border:   base,
			Selected: base.BorderStyle(lipgloss.ThickBorder()),
			Title:    lipgloss.NewStyle().Bold(true),
			Muted:    lipgloss.NewStyle().Faint(true),
		},
	}
}

// Width sets the outer width of the card.
func (c Card) Width(width int) Card {
	if width < minCardWidth {
		width = minCardWidth
	}
	c.width = width
	return c
}

// Selected marks the card as the grid cursor.
func (c Card) Selected(selected bool) Card {
	c.selected = selected
	return c
}

// ASCII limits truncation markers to plain characters.
func (c Card) ASCII(enabled bool) Card {
	c.ascii = enabled
	return c
}

// WithStyles replaces the card styles.
func (c Card) WithStyles(styles CardStyles) Card {
	c.styles = styles
	return c
}

// View renders the card.
func (c Card) View() string {
	inner := c.width - 4 // border and padding

	title := c.styles.Title.Render(fmt.Sprintf("#%d  id %d", c.position+1, c.item.ImageID))
	url := c.styles.Muted.Render(Truncate(c.item.ImageURL, inner, c.ascii))
	score := FormatScore(c.item.Score)

	style := c.styles.Border
	if c.selected {
		style = c.styles.Selected
	}

	return style.Width(c.width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, title, url, score))
}

// Truncate shortens s to at most width cells, marking the cut.
func Truncate(s string, width int, ascii bool) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}

	marker := "…"
	if ascii {
		marker = "..."
	}
	markerWidth := lipgloss.Width(marker)
	if width <= markerWidth {
		return strings.Repeat(".", width)
	}

	var b strings.Builder
	used := 0
	for _, r := range s {
		w := lipgloss.Width(string(r))
		if used+w > width-markerWidth {
			break
		}
		b.WriteRune(r)
		used += w
	}
	b.WriteString(marker)
	return b.String()
}
