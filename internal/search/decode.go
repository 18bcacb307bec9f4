package search

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// envelope is the documented response layout of /get_image.
type envelope struct {
	Query   string          `json:"query"`
	Page    int             `json:"page"`
	Size    int             `json:"size"`
	Total   *int            `json:"total"`
	Results json.RawMessage `json:"results"`
}

// decodeResponse turns a /get_image body into a ResultSet.
//
// Two layouts are accepted: the {query, results} envelope and a bare JSON array of
// items. The bare array is a compatibility shim for older backends; it is normalized
// with Total = len(items) and Size = DefaultPageSize. Anything else is an error.
func decodeResponse(body []byte, query string, page int) (ResultSet, Shape, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ResultSet{}, ShapeEnvelope, fmt.Errorf("empty body")
	}

	switch trimmed[0] {
	case '[':
		items, err := decodeItems(trimmed)
		if err != nil {
			return ResultSet{}, ShapeBareList, err
		}
		return ResultSet{
			Query: query,
			Page:  page,
			Size:  DefaultPageSize,
			Total: len(items),
			Items: items,
		}, ShapeBareList, nil

	case '{':
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return ResultSet{}, ShapeEnvelope, fmt.Errorf("decode envelope: %w", err)
		}
		if len(env.Results) == 0 {
			return ResultSet{}, ShapeEnvelope, fmt.Errorf("response has no results field")
		}
		items, err := decodeItems(env.Results)
		if err != nil {
			return ResultSet{}, ShapeEnvelope, err
		}

		rs := ResultSet{
			Query: env.Query,
			Page:  env.Page,
			Size:  env.Size,
			Total: len(items),
			Items: items,
		}
		if rs.Query == "" {
			rs.Query = query
		}
		if rs.Page <= 0 {
			rs.Page = page
		}
		if rs.Size <= 0 {
			rs.Size = DefaultPageSize
		}
		if env.Total != nil {
			rs.Total = *env.Total
		}
		return rs, ShapeEnvelope, nil

	default:
		return ResultSet{}, ShapeEnvelope, fmt.Errorf("unexpected JSON value starting with %q", trimmed[0])
	}
}

func decodeItems(raw json.RawMessage) ([]ResultItem, error) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return []ResultItem{}, nil
	}
	var items []ResultItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode results: %w", err)
	}
	if items == nil {
		items = []ResultItem{}
	}
	return items, nil
}
