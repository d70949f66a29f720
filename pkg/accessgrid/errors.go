package accessgrid

import (
	"errors"
	"fmt"
)

// Error is returned by every API operation that fails, whatever the cause.
//
// An HTTP response outside the 2xx range sets StatusCode and Body; Body holds
// the response text verbatim. Transport, serialization, and decoding failures
// set Err. Callers branch on these fields rather than on distinct types.
type Error struct {
	// Op names the operation that failed, e.g. "provision card".
	Op string

	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int

	// Body is the raw response body, when one was read.
	Body string

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("access grid: %s: API request failed (status %d): %s: %v",
			e.Op, e.StatusCode, e.Body, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("access grid: %s: API request failed (status %d): %s",
			e.Op, e.StatusCode, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("access grid: %s: API request failed: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("access grid: %s: API request failed", e.Op)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status carried by err, or 0 if err is not an
// *Error or no response was received.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
