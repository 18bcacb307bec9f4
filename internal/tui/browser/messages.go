package browser

import (
	"github.com/alexisbeaulieu97/imagesearch/internal/preferences"
	"github.com/alexisbeaulieu97/imagesearch/internal/search"
)

// Focus determines which part of the screen receives keys.
type Focus int

const (
	FocusSearch Focus = iota
	FocusGrid
)

func (f Focus) String() string {
	if f == FocusSearch {
		return "search"
	}
	return "grid"
}

// Fetch messages

// ImagesFetchedMsg carries the results of the request identified by Token.
type ImagesFetchedMsg struct {
	Token   uint64
	Results search.ResultSet
}

// ImagesFailedMsg reports that the request identified by Token failed.
type ImagesFailedMsg struct {
	Token uint64
	Query string
	Page  int
	Err   error
}

// ImagesCancelledMsg reports that a request was cancelled before it finished.
type ImagesCancelledMsg struct {
	Token uint64
}

// Preference messages

// ThemeSavedMsg reports the outcome of persisting the theme.
type ThemeSavedMsg struct {
	Mode preferences.ThemeMode
	Err  error
}

// Error messages

// ErrorMsg shows a dismissible banner.
type ErrorMsg struct {
	Message string
}

// ClearErrorMsg hides the banner.
type ClearErrorMsg struct{}
