package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// PagerStyles controls how the pager renders its parts.
type PagerStyles struct {
	Link lipgloss.Style
	Page lipgloss.Style
}

// Pager renders the Previous / Page N / Next control.
type Pager struct {
	page        int
	canPrevious bool
	ascii       bool
	styles      PagerStyles
}

// NewPager creates a pager for the given 1-based page.
func NewPager(page int, canPrevious bool) Pager {
	return Pager{
		page:        page,
		canPrevious: canPrevious,
		styles: PagerStyles{
			Link: lipgloss.NewStyle().Bold(true),
			Page: lipgloss.NewStyle(),
		},
	}
}

// WithStyles replaces the pager styles.
func (p Pager) WithStyles(styles PagerStyles) Pager {
	p.styles = styles
	return p
}

// ASCII switches the arrows to plain characters.
func (p Pager) ASCII(enabled bool) Pager {
	p.ascii = enabled
	return p
}

// View renders the pager. Previous only appears past the first page.
func (p Pager) View() string {
	prev, next := "‹ Previous", "Next ›"
	if p.ascii {
		prev, next = "< Previous", "Next >"
	}

	parts := make([]string, 0, 3)
	if p.canPrevious {
		parts = append(parts, p.styles.Link.Render(prev))
	}
	parts = append(parts, p.styles.Page.Render(fmt.Sprintf("Page %d", p.page)))
	parts = append(parts, p.styles.Link.Render(next))

	out := parts[0]
	for _, part := range parts[1:] {
		out = lipgloss.JoinHorizontal(lipgloss.Top, out, "   ", part)
	}
	return out
}
