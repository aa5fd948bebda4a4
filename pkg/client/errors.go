package client

import (
	"fmt"
)

// NetworkError indicates the upstream news API was unreachable or the request
// timed out. The core never retries; the caller decides what to do.
type NetworkError struct {
	Err error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: unable to reach news API: %v", e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// UpstreamError indicates the upstream news API returned a non-2xx response.
// Message carries the upstream-provided error message when the body was
// parseable JSON, "Unknown error" otherwise.
type UpstreamError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("news API error: %d - %s", e.StatusCode, e.Message)
}

// RequestError wraps any other failure during the call lifecycle, preserving
// the original message. The orchestrator never sees raw transport errors.
type RequestError struct {
	Err error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("request error: %v", e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *RequestError) Unwrap() error {
	return e.Err
}
