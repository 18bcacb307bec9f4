package search

import "context"

// DefaultPageSize is the page size the backend uses when none is requested.
const DefaultPageSize = 20

// ResultItem is a single scored image returned by the backend.
type ResultItem struct {
	ImageID  int64   `json:"image_id" yaml:"image_id"`
	ImageURL string  `json:"image_url" yaml:"image_url"`
	Score    float64 `json:"score" yaml:"score"`
}

// ResultSet is the ordered list of images for one (query, page) pair.
type ResultSet struct {
	Query string       `json:"query" yaml:"query"`
	Page  int          `json:"page" yaml:"page"`
	Size  int          `json:"size" yaml:"size"`
	Total int          `json:"total" yaml:"total"`
	Items []ResultItem `json:"results" yaml:"results"`
}

// Len returns the number of items in the set.
func (rs ResultSet) Len() int {
	return len(rs.Items)
}

// Empty reports whether the set holds no items.
func (rs ResultSet) Empty() bool {
	return len(rs.Items) == 0
}

// Fetcher issues one search against the backend.
type Fetcher interface {
	FetchImages(ctx context.Context, query string, page int) (ResultSet, error)
}

// Shape identifies which response layout the backend used.
type Shape int

const (
	ShapeEnvelope Shape = iota
	ShapeBareList
)

func (s Shape) String() string {
	switch s {
	case ShapeBareList:
		return "bare-list"
	default:
		return "envelope"
	}
}
