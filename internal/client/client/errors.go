package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrTransport = errors.New("transport failure")
	ErrDecode    = errors.New("malformed response")
	ErrIO        = errors.New("local file error")
	ErrRequest   = errors.New("cannot build request")

	// ErrRemote matches every *RemoteError.
	ErrRemote = errors.New("remote failure")

	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrServerError  = errors.New("server error")
)

// RemoteError is returned when the service answers with a non-2xx status.
// Body is the response body as text, surfaced to the user as-is.
type RemoteError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error // status sentinel, may be nil
}

func (e *RemoteError) Error() string {
	status := fmt.Sprintf("HTTP %d", e.StatusCode)
	if text := http.StatusText(e.StatusCode); text != "" {
		status += " " + text
	}
	if e.Body == "" {
		return fmt.Sprintf("%s failed: %s", e.Op, status)
	}
	return fmt.Sprintf("%s failed: %s: %s", e.Op, status, e.Body)
}

func (e *RemoteError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRemote}
	}
	return []error{ErrRemote, e.Err}
}

// classifyStatus maps an HTTP status code to a sentinel error.
// Returns nil for codes without a dedicated sentinel.
func classifyStatus(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	default:
		if code >= http.StatusInternalServerError {
			return ErrServerError
		}
		return nil
	}
}
