// Package browser is the interactive image search screen.
package browser

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/imagesearch/internal/logger"
	"github.com/alexisbeaulieu97/imagesearch/internal/preferences"
	"github.com/alexisbeaulieu97/imagesearch/internal/search"
	"github.com/alexisbeaulieu97/imagesearch/internal/session"
)

const (
	defaultColumns = 3
	maxColumns     = 6
)

var errNoFetcher = errors.New("no image fetcher configured")

// Options configures a new Model.
type Options struct {
	Fetcher     search.Fetcher
	Preferences *preferences.Store
	Logger      *logger.Logger
	// Columns is the number of cards per grid row.
	Columns int
	ASCII   bool
	// InitialQuery is submitted as soon as the program starts.
	InitialQuery string
	// Notice is shown in the error banner on start, e.g. when preferences could not load.
	Notice string
}

// Model is the main browser model
type Model struct {
	// Core data
	state   session.State
	fetcher search.Fetcher
	prefs   *preferences.Store
	log     *logger.Logger

	// UI state
	focus  Focus
	cursor int
	input  textinput.Model

	// Component state
	spinner spinner.Model

	// Operation state
	cancel    context.CancelFunc
	initCmd   tea.Cmd
	notice    string
	showError bool
	errorMsg  string

	// Theme
	theme    preferences.ThemeMode
	themeGen uint64
	styles   Styles

	// Dimensions
	width  int
	height int

	// Configuration
	columns int
	ascii   bool
}

// NewModel creates a new browser model
func NewModel(opts Options) Model {
	theme := preferences.DefaultTheme
	if opts.Preferences != nil {
		theme = opts.Preferences.Theme()
	}

	columns := opts.Columns
	if columns <= 0 {
		columns = defaultColumns
	}
	if columns > maxColumns {
		columns = maxColumns
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	styles := NewStyles(theme)

	s := spinner.New()
	s.Spinner = spinner.Dot
	if opts.ASCII {
		s.Spinner = spinner.Line
	}
	s.Style = styles.Spinner

	input := textinput.New()
	input.Placeholder = "Search images"
	input.Prompt = "> "
	input.CharLimit = 256
	input.Width = 50

	m := Model{
		state:   session.New(),
		fetcher: opts.Fetcher,
		prefs:   opts.Preferences,
		log:     log,
		focus:   FocusSearch,
		input:   input,
		spinner: s,
		theme:   theme,
		styles:  styles.WithMaxWidth(80),
		width:   80,
		height:  24,
		columns: columns,
		ascii:   opts.ASCII,
		notice:  opts.Notice,
	}
	m.input.Focus()

	if opts.InitialQuery != "" {
		m.state = m.state.Search(opts.InitialQuery)
		m.input.SetValue(m.state.Query())

		var cmd tea.Cmd
		m, cmd = m.syncFetch()
		m.initCmd = cmd
		if m.state.Query() != "" {
			m.setFocus(FocusGrid)
		}
	}

	return m
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.initCmd != nil {
		cmds = append(cmds, m.initCmd)
	}
	if m.notice != "" {
		cmds = append(cmds, showErrorCmd(m.notice))
	}
	return tea.Batch(cmds...)
}

// Helper Methods

// syncFetch reconciles the session with its query and page, issuing a fetch
// when they changed. A superseded request has its context cancelled.
func (m Model) syncFetch() (Model, tea.Cmd) {
	before := m.state.Token()
	next, req, ok := m.state.Sync()
	m.state = next

	if next.Token() != before {
		m.cursor = 0
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
	}

	if !ok {
		return m, nil
	}

	if m.fetcher == nil {
		m.state, _ = m.state.Fail(req.Token, errNoFetcher)
		return m, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	m.log.Debug("fetch issued", logger.Fields{
		"query": req.Query,
		"page":  req.Page,
		"token": req.Token,
	})

	return m, tea.Batch(fetchImagesCmd(ctx, req, m.fetcher), m.spinner.Tick)
}

// quit tears the session down so nothing is applied after exit.
func (m Model) quit() (Model, tea.Cmd) {
	m.state = m.state.Teardown()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.log.Debug("session closed")
	return m, tea.Quit
}

// setFocus moves keyboard focus between the search box and the grid.
func (m *Model) setFocus(focus Focus) tea.Cmd {
	m.focus = focus
	if focus == FocusSearch {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// MoveCursor moves the grid cursor by delta, staying within the results.
func (m *Model) MoveCursor(delta int) {
	n := len(m.state.Results())
	if n == 0 {
		m.cursor = 0
		return
	}
	next := m.cursor + delta
	if next < 0 || next >= n {
		return
	}
	m.cursor = next
}

// State returns the session state.
func (m Model) State() session.State {
	return m.state
}

// Focus returns which part of the screen receives keys.
func (m Model) Focus() Focus {
	return m.focus
}

// Cursor returns the grid cursor.
func (m Model) Cursor() int {
	return m.cursor
}

// Theme returns the active theme mode.
func (m Model) Theme() preferences.ThemeMode {
	return m.theme
}

// ErrorMessage returns the banner text, empty when hidden.
func (m Model) ErrorMessage() string {
	if !m.showError {
		return ""
	}
	return m.errorMsg
}
