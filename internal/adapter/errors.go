package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidURL signals malformed endpoint construction. With a valid
	// base URL configuration it should never occur.
	ErrInvalidURL = errors.New("invalid url")

	// ErrRequestFailed signals that the server completed the request but
	// rejected it or reported an application error. The wrapping
	// [RequestError] carries the status and extracted message.
	ErrRequestFailed = errors.New("request failed")

	// ErrDecodingFailed signals an unexpected payload shape; callers
	// treat it as "no usable data".
	ErrDecodingFailed = errors.New("decoding failed")

	// ErrNoData signals a completed response with no usable body.
	ErrNoData = errors.New("no data received")

	// ErrUnknown signals a transport-level failure with no response at
	// all (DNS, connection reset, timeout).
	ErrUnknown = errors.New("unknown transport error")
)

// RequestError is the application-level failure returned for non-2xx
// responses. It unwraps to [ErrRequestFailed] so callers can use
// errors.Is without inspecting the concrete type.
type RequestError struct {
	// Status is the HTTP status code of the completed response.
	Status int

	// Message is the human-readable error extracted from the response
	// body ("detail"/"error"/"message" field, or the raw body text).
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

func (e *RequestError) Unwrap() error { return ErrRequestFailed }
