package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestFailed marks any non-success response from the backend.
	ErrRequestFailed = errors.New("backend request failed")
	// ErrTransport marks a call that never produced a response.
	ErrTransport = errors.New("backend unreachable")
)

// RequestError describes a non-success response.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

func (e *RequestError) Unwrap() error {
	return ErrRequestFailed
}
