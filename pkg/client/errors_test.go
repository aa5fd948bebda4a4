package client

import (
	"errors"
	"fmt"
	"testing"
)

func TestUpstreamError_Error(t *testing.T) {
	err := &UpstreamError{StatusCode: 429, Message: "rate limited"}

	want := "news API error: 429 - rate limited"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &NetworkError{Err: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is does not reach the wrapped cause")
	}

	wrapped := fmt.Errorf("fetch headlines: %w", err)
	var netErr *NetworkError
	if !errors.As(wrapped, &netErr) {
		t.Error("errors.As does not find *NetworkError through wrapping")
	}
}

func TestRequestError_PreservesMessage(t *testing.T) {
	cause := errors.New("decode response: unexpected EOF")
	err := &RequestError{Err: cause}

	want := "request error: decode response: unexpected EOF"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is does not reach the wrapped cause")
	}
}

func TestErrorKinds_AreDistinct(t *testing.T) {
	var netErr *NetworkError
	var upErr *UpstreamError
	var reqErr *RequestError

	err := error(&UpstreamError{StatusCode: 500, Message: "boom"})
	if errors.As(err, &netErr) || errors.As(err, &reqErr) {
		t.Error("UpstreamError matched another error kind")
	}
	if !errors.As(err, &upErr) {
		t.Error("UpstreamError did not match its own kind")
	}
}
