package constants

import (
	"errors"
	"net/http"
)

// CodedError is an error that knows which HTTP status it should be rendered with.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrBadRequest          = NewCodedError(http.StatusBadRequest, "bad request")
	ErrUnauthorized        = NewCodedError(http.StatusUnauthorized, "unauthorized")
	ErrMissingAuthCookie   = NewCodedError(http.StatusUnauthorized, "missing auth cookie")
	ErrDBNotFound          = NewCodedError(http.StatusNotFound, "not found")
	ErrShortlistFull       = NewCodedError(http.StatusConflict, "shortlist already holds two locations")
	ErrShortlistIncomplete = NewCodedError(http.StatusConflict, "shortlist needs two locations to compare")
	ErrExtractionParse     = NewCodedError(http.StatusInternalServerError, "failed to parse model output")
	ErrUpstreamPayload     = NewCodedError(http.StatusBadGateway, "upstream returned an unusable payload")
	ErrUpstreamFailed      = NewCodedError(http.StatusBadGateway, "upstream request failed")
	ErrStorageDisabled     = NewCodedError(http.StatusServiceUnavailable, "storage is not configured")
)

// CodeOf returns the status of the first CodedError in err's chain, or 500.
func CodeOf(err error) int {
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return http.StatusInternalServerError
}
