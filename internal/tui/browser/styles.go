package browser

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/imagesearch/internal/preferences"
	"github.com/alexisbeaulieu97/imagesearch/internal/tui/components"
)

// Palette is the set of colors a theme mode renders with.
type Palette struct {
	Primary     lipgloss.Color
	Accent      lipgloss.Color
	Muted       lipgloss.Color
	Error       lipgloss.Color
	Text        lipgloss.Color
	Surface     lipgloss.Color
	BannerError lipgloss.Color
}

var (
	darkPalette = Palette{
		Primary:     lipgloss.Color("99"),  // Purple
		Accent:      lipgloss.Color("212"), // Pink
		Muted:       lipgloss.Color("245"), // Gray
		Error:       lipgloss.Color("196"), // Red
		Text:        lipgloss.Color("252"),
		Surface:     lipgloss.Color("235"),
		BannerError: lipgloss.Color("52"),
	}

	lightPalette = Palette{
		Primary:     lipgloss.Color("57"),
		Accent:      lipgloss.Color("161"),
		Muted:       lipgloss.Color("242"),
		Error:       lipgloss.Color("160"),
		Text:        lipgloss.Color("235"),
		Surface:     lipgloss.Color("255"),
		BannerError: lipgloss.Color("224"),
	}
)

// PaletteFor returns the palette of a theme mode.
func PaletteFor(mode preferences.ThemeMode) Palette {
	if mode == preferences.ThemeLight {
		return lightPalette
	}
	return darkPalette
}

// Styles holds every style the browser renders with for one theme.
type Styles struct {
	Palette Palette

	Title       lipgloss.Style
	Header      lipgloss.Style
	Footer      lipgloss.Style
	ErrorBanner lipgloss.Style
	Empty       lipgloss.Style
	Failure     lipgloss.Style
	Summary     lipgloss.Style
	Search      lipgloss.Style
	SearchFocus lipgloss.Style
	Lightbox    lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Spinner     lipgloss.Style

	Card  components.CardStyles
	Pager components.PagerStyles
}

// NewStyles builds the styles for mode.
func NewStyles(mode preferences.ThemeMode) Styles {
	p := PaletteFor(mode)

	cardBase := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Muted).
		Foreground(p.Text).
		Padding(0, 1)

	return Styles{
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			PaddingRight(2),

		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.Muted).
			MarginBottom(1),

		Footer: lipgloss.NewStyle().
			Foreground(p.Muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.Muted).
			MarginTop(1),

		ErrorBanner: lipgloss.NewStyle().
			Foreground(p.Error).
			Background(p.BannerError).
			Bold(true).
			Padding(0, 2).
			MarginBottom(1).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(p.Error),

		Empty: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true).
			PaddingTop(2).
			PaddingBottom(2),

		Failure: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true).
			PaddingTop(2).
			PaddingBottom(2),

		Summary: lipgloss.NewStyle().
			Foreground(p.Muted),

		Search: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Muted).
			Padding(0, 1),

		SearchFocus: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),

		Lightbox: lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(p.Primary).
			Padding(1, 3),

		Label: lipgloss.NewStyle().
			Foreground(p.Muted).
			Bold(true).
			Width(10),

		Value: lipgloss.NewStyle().
			Foreground(p.Text),

		Spinner: lipgloss.NewStyle().
			Foreground(p.Primary),

		Card: components.CardStyles{
			Border: cardBase,
			Selected: cardBase.
				BorderStyle(lipgloss.ThickBorder()).
				BorderForeground(p.Accent),
			Title: lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
			Muted: lipgloss.NewStyle().Foreground(p.Muted),
		},

		Pager: components.PagerStyles{
			Link: lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
			Page: lipgloss.NewStyle().Foreground(p.Text),
		},
	}
}

// WithMaxWidth constrains the full-width styles to width.
func (s Styles) WithMaxWidth(width int) Styles {
	if width <= 4 {
		return s
	}
	s.Header = s.Header.Width(width - 2)
	s.Footer = s.Footer.Width(width - 2)
	s.ErrorBanner = s.ErrorBanner.MaxWidth(width)
	s.Lightbox = s.Lightbox.MaxWidth(width)
	return s
}
