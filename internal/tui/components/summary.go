package components

import (
	"fmt"
)

// SummaryData describes the visible slice of results.
type SummaryData struct {
	Query string
	Page  int
	Count int
	Total int
}

// Summary renders a one-line description of the current results.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	if s.data.Query == "" {
		return ""
	}

	noun := "results"
	if s.data.Count == 1 {
		noun = "result"
	}

	line := fmt.Sprintf("%d %s for %q on page %d", s.data.Count, noun, s.data.Query, s.data.Page)
	if s.data.Total > s.data.Count {
		line += fmt.Sprintf(" (%d total)", s.data.Total)
	}
	return line
}
