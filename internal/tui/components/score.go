package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ScoreBar renders a relevance score as a labelled bar.
type ScoreBar struct {
	bar progress.Model
}

// NewScoreBar creates a score bar of the given width.
func NewScoreBar(width int) ScoreBar {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	if width > 0 {
		bar.Width = width
	}
	return ScoreBar{bar: bar}
}

// View renders score, clamped to [0, 1] for the bar but printed as given.
func (s ScoreBar) View(score float64) string {
	ratio := math.Max(0, math.Min(1.0, score))
	label := lipgloss.NewStyle().Bold(true).Render(FormatScore(score))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", s.bar.ViewAs(ratio))
}

// FormatScore prints a score with two decimals, e.g. "Score: 0.95".
func FormatScore(score float64) string {
	return fmt.Sprintf("Score: %.2f", score)
}
