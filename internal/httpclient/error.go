package httpclient

import (
	"fmt"

	ierr "github.com/letybo/ordering/internal/errors"
)

// Error carries a non-2xx upstream response
type Error struct {
	StatusCode int
	Response   []byte
}

func (e *Error) Error() string {
	return fmt.Sprintf("http status %d", e.StatusCode)
}

// NewError wraps the response in an error marked ErrHTTPClient
func NewError(statusCode int, response []byte) error {
	return ierr.WithError(&Error{StatusCode: statusCode, Response: response}).
		WithHintf("Upstream service responded with status %d", statusCode).
		WithReportableDetails(map[string]any{
			"status_code": statusCode,
		}).
		Mark(ierr.ErrHTTPClient)
}

// IsHTTPError checks if an error is an HTTP client error
func IsHTTPError(err error) (*Error, bool) {
	var httpErr *Error
	if ierr.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
