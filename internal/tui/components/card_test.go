package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/imagesearch/internal/search"
)

func TestCardView(t *testing.T) {
	t.Parallel()

	item := search.ResultItem{ImageID: 42, ImageURL: "http://img/1.jpg", Score: 0.951}

	t.Run("renders id url and score", func(t *testing.T) {
		t.Parallel()
		view := NewCard(item, 0).View()
		require.Contains(t, view, "#1")
		require.Contains(t, view, "id 42")
		require.Contains(t, view, "http://img/1.jpg")
		require.Contains(t, view, "Score: 0.95")
	})

	t.Run("respects width", func(t *testing.T) {
		t.Parallel()
		long := search.ResultItem{ImageID: 7, ImageURL: "http://example.com/" + strings.Repeat("a", 80) + ".jpg", Score: 0.5}
		view := NewCard(long, 4).Width(24).ASCII(true).View()
		require.LessOrEqual(t, lipgloss.Width(view), 24)
		require.Contains(t, view, "...")
		require.Contains(t, view, "#5")
	})

	t.Run("minimum width", func(t *testing.T) {
		t.Parallel()
		card := NewCard(item, 0).Width(2)
		require.Equal(t, minCardWidth, card.width)
	})

	t.Run("selection changes the border", func(t *testing.T) {
		t.Parallel()
		plain := NewCard(item, 0).View()
		selected := NewCard(item, 0).Selected(true).View()
		require.NotEqual(t, plain, selected)
	})
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		width int
		ascii bool
		want  string
	}{
		{"fits", "short", 10, false, "short"},
		{"exact", "abcde", 5, false, "abcde"},
		{"unicode marker", "abcdefgh", 5, false, "abcd…"},
		{"ascii marker", "abcdefgh", 6, true, "abc..."},
		{"zero width", "abc", 0, false, ""},
		{"tiny width", "abcdef", 2, true, ".."},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Truncate(tt.in, tt.width, tt.ascii))
		})
	}
}
