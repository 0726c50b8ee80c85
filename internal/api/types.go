package api

import (
	"fmt"

	"github.com/five82/roster/internal/items"
)

// ListResponse mirrors GET /api/items.
type ListResponse struct {
	Items []items.Item `json:"items"`
}

// ErrorResponse is the optional body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusError is returned for HTTP responses with status >= 400.
type StatusError struct {
	Path    string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api %s returned status %d", e.Path, e.Code)
}
