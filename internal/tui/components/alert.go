package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Alert renders a boxed message, optionally with a title and a dismiss marker.
type Alert struct {
	message     string
	title       string
	dismissible bool
	ascii       bool
	style       lipgloss.Style
	titleStyle  lipgloss.Style
}

// NewAlert creates an alert for message.
func NewAlert(message string) Alert {
	return Alert{
		message:    message,
		style:      lipgloss.NewStyle().Padding(0, 1),
		titleStyle: lipgloss.NewStyle().Bold(true),
	}
}

// ErrorAlert creates a dismissible alert titled "Error".
func ErrorAlert(message string) Alert {
	return NewAlert(message).WithTitle("Error").WithDismissible(true)
}

// WithTitle sets the alert title
func (a Alert) WithTitle(title string) Alert {
	a.title = title
	return a
}

// WithDismissible sets whether the alert shows a dismiss marker
func (a Alert) WithDismissible(dismissible bool) Alert {
	a.dismissible = dismissible
	return a
}

// WithStyle sets the box style.
func (a Alert) WithStyle(style lipgloss.Style) Alert {
	a.style = style
	return a
}

// ASCII swaps the dismiss marker for a plain one.
func (a Alert) ASCII(enabled bool) Alert {
	a.ascii = enabled
	return a
}

// View renders the alert
func (a Alert) View() string {
	var header []string
	if a.title != "" {
		header = append(header, a.titleStyle.Render(a.title))
	}
	if a.dismissible {
		marker := "[×]"
		if a.ascii {
			marker = "[x]"
		}
		header = append(header, marker)
	}

	var content []string
	if len(header) > 0 {
		content = append(content, strings.Join(header, " "))
	}
	if a.message != "" {
		content = append(content, a.message)
	}

	return a.style.Render(strings.Join(content, "\n"))
}
