package client

import (
	"fmt"
	"net/http"
)

// HTTPError is satisfied by errors that carry an HTTP status code.
type HTTPError interface {
	error
	StatusCode() int
}

// StatusError reports a non-success response from the remote store.
type StatusError struct {
	Code   int
	Method string
	Path   string
}

func (e StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.Code)
}

// StatusCode returns the response status, defaulting to 500 when unset.
func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}
