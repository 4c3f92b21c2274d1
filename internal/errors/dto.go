package errors

// ErrorResponse is the body of every failed API call
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Display string         `json:"message"`
	Code    string         `json:"code,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// CodeFromErr returns the code of the first sentinel the error is marked with
func CodeFromErr(err error) string {
	for sentinel := range statusCodeMap {
		if Is(err, sentinel) {
			if ie, ok := sentinel.(*InternalError); ok {
				return ie.Code
			}
		}
	}
	return ErrCodeSystemError
}
