package session

import "github.com/alexisbeaulieu97/imagesearch/internal/search"

// Lightbox is the optional selected index into the current results.
type Lightbox struct {
	index int
	open  bool
}

// Index returns the selected index and whether one is set.
func (l Lightbox) Index() (int, bool) {
	return l.index, l.open
}

// Lightbox returns the lightbox state.
func (s State) Lightbox() Lightbox {
	return s.lightbox
}

// LightboxOpen reports whether an image is selected.
func (s State) LightboxOpen() bool {
	return s.lightbox.open
}

// Selected returns the selected item and its index.
func (s State) Selected() (search.ResultItem, int, bool) {
	if !s.lightbox.open {
		return search.ResultItem{}, 0, false
	}
	items := s.Results()
	if s.lightbox.index < 0 || s.lightbox.index >= len(items) {
		return search.ResultItem{}, 0, false
	}
	return items[s.lightbox.index], s.lightbox.index, true
}

// Select opens the lightbox on item i. Out of range indexes and states without
// results are ignored.
func (s State) Select(i int) State {
	items := s.Results()
	if i < 0 || i >= len(items) {
		return s
	}
	s.lightbox = Lightbox{index: i, open: true}
	return s
}

// Close closes the lightbox.
func (s State) Close() State {
	s.lightbox = Lightbox{}
	return s
}

// Next moves to the following image; no-op when closed or already on the last one.
func (s State) Next() State {
	if !s.lightbox.open || s.lightbox.index >= len(s.Results())-1 {
		return s
	}
	s.lightbox.index++
	return s
}

// Previous moves to the preceding image; no-op when closed or already on the first.
func (s State) Previous() State {
	if !s.lightbox.open || s.lightbox.index <= 0 {
		return s
	}
	s.lightbox.index--
	return s
}
