package v1

import (
	ierr "github.com/letybo/ordering/internal/errors"
)

// ErrorResponse is the body of every failed call, rendered by the error
// handler middleware
type ErrorResponse = ierr.ErrorResponse
