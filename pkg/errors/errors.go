package errors

import (
	stdErrors "errors"
	"fmt"
)

// FetchFailedMessage is the only failure text ever shown to users for a search.
const FetchFailedMessage = "failed to fetch images"

// FetchErrorKind classifies search request failures.
type FetchErrorKind string

const (
	KindRequestFailed     FetchErrorKind = "request-failed"
	KindMalformedResponse FetchErrorKind = "malformed-response"
)

var (
	// ErrRequestFailed matches any FetchError of kind KindRequestFailed.
	ErrRequestFailed = stdErrors.New("request failed")
	// ErrMalformedResponse matches any FetchError of kind KindMalformedResponse.
	ErrMalformedResponse = stdErrors.New("malformed response")
)

// ParseError represents a config file parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FetchError represents a failed image search against the remote backend.
type FetchError struct {
	Kind   FetchErrorKind
	Query  string
	Page   int
	Status int
	Err    error
}

// NewRequestFailed constructs a FetchError for transport failures and non-2xx statuses.
// status is zero when no response was received.
func NewRequestFailed(query string, page, status int, err error) error {
	return &FetchError{Kind: KindRequestFailed, Query: query, Page: page, Status: status, Err: err}
}

// NewMalformedResponse constructs a FetchError for bodies that match no known shape.
func NewMalformedResponse(query string, page int, err error) error {
	return &FetchError{Kind: KindMalformedResponse, Query: query, Page: page, Err: err}
}

func (e *FetchError) Error() string {
	if e == nil {
		return ""
	}
	prefix := fmt.Sprintf("fetch images %q page %d: %s", e.Query, e.Page, e.Kind)
	if e.Status != 0 {
		prefix = fmt.Sprintf("%s (status %d)", prefix, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	}
	return prefix
}

// Unwrap exposes the underlying error.
func (e *FetchError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is match the kind sentinels.
func (e *FetchError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrRequestFailed:
		return e.Kind == KindRequestFailed
	case ErrMalformedResponse:
		return e.Kind == KindMalformedResponse
	}
	return false
}

// UserMessage returns the generic text shown in place of the results.
// Malformed responses fail closed and read the same as request failures.
func (e *FetchError) UserMessage() string {
	return FetchFailedMessage
}
