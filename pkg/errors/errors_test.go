package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("config.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "config.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "config.yaml:12")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("api.base_url", "must be an http(s) URL", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "api.base_url", validationErr.Field)
	require.Contains(t, err.Error(), "must be an http(s) URL")
}

func TestFetchErrorRequestFailed(t *testing.T) {
	t.Parallel()

	err := NewRequestFailed("mountains", 2, 503, nil)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, KindRequestFailed, fetchErr.Kind)
	require.Equal(t, 503, fetchErr.Status)
	require.ErrorIs(t, err, ErrRequestFailed)
	require.NotErrorIs(t, err, ErrMalformedResponse)
	require.Contains(t, err.Error(), "status 503")
	require.Equal(t, FetchFailedMessage, fetchErr.UserMessage())
}

func TestFetchErrorMalformedResponseWrapsCause(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("unexpected end of JSON input")
	err := NewMalformedResponse("ocean", 1, underlying)

	require.ErrorIs(t, err, ErrMalformedResponse)
	require.ErrorIs(t, err, underlying)
	require.NotErrorIs(t, err, ErrRequestFailed)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, "failed to fetch images", fetchErr.UserMessage())
	require.Contains(t, err.Error(), `"ocean"`)
}
