package ghstore

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports an empty or malformed parameter caught
	// before any network call is made.
	ErrInvalidArgument = errors.New("ghstore: invalid argument")

	// ErrNotFound reports that a path has no current version at the
	// requested branch: the remote confirmed the file does not exist.
	// A failed probe (network error, auth rejection, 5xx) is NOT reported
	// as ErrNotFound; it surfaces as the underlying error so callers can
	// tell absence from ignorance.
	ErrNotFound = errors.New("ghstore: file not found")

	// ErrUnavailable reports that the remote answered but the payload was
	// not downloadable file content, for example a directory listing or a
	// non-base64 encoding.
	ErrUnavailable = errors.New("ghstore: content unavailable")
)

// APIError is a non-2xx response from the GitHub API, passed through
// without retry or classification. Marker conflicts, rate limiting and
// auth rejections all arrive here.
type APIError struct {
	StatusCode int
	Message    string
	DocURL     string
	URL        string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("github: %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("github: %s: HTTP %d: %s", e.URL, e.StatusCode, e.Message)
}
