// Package session holds the query, page, fetch and lightbox state of one search
// session. State is a value; every action is a method that returns the next State,
// so transitions can be tested without a terminal.
package session

import "strings"

// FirstPage is the lowest valid page number.
const FirstPage = 1

// key identifies one logical search.
type key struct {
	query string
	page  int
}

// State is the owned session state threaded through the UI.
type State struct {
	query    string
	page     int
	fetch    FetchState
	lightbox Lightbox

	token  uint64
	synced key
	closed bool
}

// New returns the start-up state: no query, page 1, idle.
func New() State {
	return State{
		page:   FirstPage,
		synced: key{page: FirstPage},
	}
}

// Query returns the active query. Empty means no search is active.
func (s State) Query() string {
	return s.query
}

// Page returns the current page number.
func (s State) Page() int {
	return s.page
}

// Search submits a new query. Surrounding whitespace is dropped, the page goes back
// to 1 and the lightbox closes.
func (s State) Search(query string) State {
	s.query = strings.TrimSpace(query)
	s.page = FirstPage
	s.lightbox = Lightbox{}
	return s
}

// Clean clears the query and resets the page.
func (s State) Clean() State {
	s.query = ""
	s.page = FirstPage
	s.lightbox = Lightbox{}
	return s
}

// ChangePage moves to page. Values below FirstPage are ignored.
func (s State) ChangePage(page int) State {
	if page < FirstPage || page == s.page {
		return s
	}
	s.page = page
	s.lightbox = Lightbox{}
	return s
}

// NextPage advances one page. There is no known upper bound; an empty result set
// is how the end shows up.
func (s State) NextPage() State {
	return s.ChangePage(s.page + 1)
}

// PreviousPage goes back one page, stopping at FirstPage.
func (s State) PreviousPage() State {
	return s.ChangePage(s.page - 1)
}

// CanPreviousPage reports whether a Previous control should be offered.
func (s State) CanPreviousPage() bool {
	return s.page > FirstPage
}

func (s State) current() key {
	return key{query: s.query, page: s.page}
}

// pending reports whether the query or page changed since the last Sync.
func (s State) pending() bool {
	return s.synced != s.current()
}
