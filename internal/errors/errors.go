package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Sentinels every layer marks its errors with. Handlers translate them to
// status codes through HTTPStatusFromErr.
var (
	ErrNotFound         = new(ErrCodeNotFound, "resource not found")
	ErrAlreadyExists    = new(ErrCodeAlreadyExists, "resource already exists")
	ErrValidation       = new(ErrCodeValidation, "validation error")
	ErrInvalidSelection = new(ErrCodeInvalidSelection, "invalid selection")
	ErrInvalidOperation = new(ErrCodeInvalidOperation, "invalid operation")
	ErrDataIntegrity    = new(ErrCodeDataIntegrity, "catalog data integrity violation")
	ErrRateLimited      = new(ErrCodeRateLimited, "too many requests")
	ErrHTTPClient       = new(ErrCodeHTTPClient, "upstream http error")
	ErrDatabase         = new(ErrCodeDatabase, "database error")
	ErrSystem           = new(ErrCodeSystemError, "system error")

	statusCodeMap = map[error]int{
		ErrHTTPClient:       http.StatusBadGateway,
		ErrDatabase:         http.StatusInternalServerError,
		ErrNotFound:         http.StatusNotFound,
		ErrAlreadyExists:    http.StatusConflict,
		ErrValidation:       http.StatusBadRequest,
		ErrInvalidSelection: http.StatusBadRequest,
		ErrInvalidOperation: http.StatusConflict,
		ErrDataIntegrity:    http.StatusInternalServerError,
		ErrRateLimited:      http.StatusTooManyRequests,
		ErrSystem:           http.StatusInternalServerError,
	}
)

const (
	ErrCodeHTTPClient       = "http_client_error"
	ErrCodeSystemError      = "system_error"
	ErrCodeNotFound         = "not_found"
	ErrCodeAlreadyExists    = "already_exists"
	ErrCodeValidation       = "validation_error"
	ErrCodeInvalidSelection = "invalid_selection"
	ErrCodeInvalidOperation = "invalid_operation"
	ErrCodeDataIntegrity    = "data_integrity"
	ErrCodeRateLimited      = "rate_limited"
	ErrCodeDatabase         = "database_error"
)

// InternalError is a sentinel carrying a machine readable code.
type InternalError struct {
	Code    string
	Message string
	Err     error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is matches on the code so wrapped copies of a sentinel still compare equal
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvalidSelection reports whether a selection mutation was rejected
func IsInvalidSelection(err error) bool {
	return errors.Is(err, ErrInvalidSelection)
}

// IsDataIntegrity reports whether catalog data failed its load-time checks
func IsDataIntegrity(err error) bool {
	return errors.Is(err, ErrDataIntegrity)
}

func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}

func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

func IsHTTPClient(err error) bool {
	return errors.Is(err, ErrHTTPClient)
}

func IsDatabase(err error) bool {
	return errors.Is(err, ErrDatabase)
}

// HTTPStatusFromErr maps a marked error to its response status, defaulting to 500
func HTTPStatusFromErr(err error) int {
	for e, status := range statusCodeMap {
		if errors.Is(err, e) {
			return status
		}
	}
	return http.StatusInternalServerError
}
