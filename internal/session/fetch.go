package session

import (
	"github.com/alexisbeaulieu97/imagesearch/internal/search"
	searcherrors "github.com/alexisbeaulieu97/imagesearch/pkg/errors"
)

// FailureReason is the message shown for any failed fetch.
const FailureReason = searcherrors.FetchFailedMessage

// FetchStatus tags the variant held by FetchState.
type FetchStatus int

const (
	StatusIdle FetchStatus = iota
	StatusLoading
	StatusSuccess
	StatusFailure
)

func (s FetchStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "idle"
	}
}

// FetchState is the fetch lifecycle for the current (query, page).
// Results is only meaningful in StatusSuccess, Reason and Err only in StatusFailure.
type FetchState struct {
	Status  FetchStatus
	Results search.ResultSet
	Reason  string
	Err     error
}

// Request describes the one fetch the caller must issue after a Sync.
type Request struct {
	Token uint64
	Query string
	Page  int
}

// Fetch returns the current fetch state.
func (s State) Fetch() FetchState {
	return s.fetch
}

// Token returns the token of the most recently issued request.
func (s State) Token() uint64 {
	return s.token
}

// Closed reports whether Teardown was called.
func (s State) Closed() bool {
	return s.closed
}

// Results returns the items of a successful fetch, or nil.
func (s State) Results() []search.ResultItem {
	if s.fetch.Status != StatusSuccess || s.pending() {
		return nil
	}
	return s.fetch.Results.Items
}

// Sync reconciles the fetch lifecycle with the current (query, page).
//
// When the pair changed since the previous Sync the token is bumped, which makes
// every in-flight completion stale. An empty query forces Idle and issues nothing;
// a non-empty one enters Loading and returns the single request to issue.
func (s State) Sync() (State, Request, bool) {
	if s.closed {
		return s, Request{}, false
	}
	current := s.current()
	if current == s.synced {
		return s, Request{}, false
	}

	s.synced = current
	s.token++
	s.lightbox = Lightbox{}

	if s.query == "" {
		s.fetch = FetchState{Status: StatusIdle}
		return s, Request{}, false
	}

	s.fetch = FetchState{Status: StatusLoading}
	return s, Request{Token: s.token, Query: s.query, Page: s.page}, true
}

// Resolve applies a successful response. It returns false, leaving the state
// untouched, when token no longer names the current request.
func (s State) Resolve(token uint64, results search.ResultSet) (State, bool) {
	if !s.applicable(token) {
		return s, false
	}
	if results.Items == nil {
		results.Items = []search.ResultItem{}
	}
	s.fetch = FetchState{Status: StatusSuccess, Results: results}
	s.lightbox = Lightbox{}
	return s, true
}

// Fail applies a failed response with the same staleness rule as Resolve.
// The failure is final for this (query, page); nothing is retried.
func (s State) Fail(token uint64, err error) (State, bool) {
	if !s.applicable(token) {
		return s, false
	}
	s.fetch = FetchState{Status: StatusFailure, Reason: FailureReason, Err: err}
	s.lightbox = Lightbox{}
	return s, true
}

// Teardown marks every later completion as inapplicable.
func (s State) Teardown() State {
	s.closed = true
	s.token++
	return s
}

func (s State) applicable(token uint64) bool {
	return !s.closed && token == s.token && s.fetch.Status == StatusLoading
}
