package session

// ViewKind is the body a renderer must show for a State.
type ViewKind int

const (
	ViewPrompt ViewKind = iota
	ViewLoading
	ViewError
	ViewNoResults
	ViewGrid
)

func (v ViewKind) String() string {
	switch v {
	case ViewLoading:
		return "loading"
	case ViewError:
		return "error"
	case ViewNoResults:
		return "no-results"
	case ViewGrid:
		return "grid"
	default:
		return "prompt"
	}
}

// View derives the body to render. An empty query always yields ViewPrompt, so the
// grid never shows without an active search.
func (s State) View() ViewKind {
	if s.query == "" {
		return ViewPrompt
	}
	if s.pending() {
		return ViewLoading
	}
	switch s.fetch.Status {
	case StatusFailure:
		return ViewError
	case StatusSuccess:
		if s.fetch.Results.Empty() {
			return ViewNoResults
		}
		return ViewGrid
	default:
		return ViewLoading
	}
}

// ShowPager reports whether page controls belong on screen.
func (s State) ShowPager() bool {
	return s.query != ""
}
