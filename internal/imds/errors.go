package imds

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
)

// UnavailableError reports a non-success status from the metadata endpoint.
type UnavailableError struct {
	StatusCode int
	Err        error
}

func (e *UnavailableError) Error() string {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return fmt.Sprintf("failed to fetch metadata, status code: %d (metadata header rejected or api-version invalid)", e.StatusCode)
	case http.StatusNotFound:
		return fmt.Sprintf("failed to fetch metadata, status code: %d (endpoint not found)", e.StatusCode)
	case http.StatusTooManyRequests:
		return fmt.Sprintf("failed to fetch metadata, status code: %d (rate limited)", e.StatusCode)
	default:
		return fmt.Sprintf("failed to fetch metadata, status code: %d", e.StatusCode)
	}
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// TransportError reports that the endpoint could not be reached or its body
// could not be decoded.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	if e.Unreachable() {
		return fmt.Sprintf("metadata endpoint %s unreachable (is this running on an Azure VM?): %v", e.URL, e.Err)
	}
	return fmt.Sprintf("metadata request to %s failed: %v", e.URL, e.Err)
}

// Unreachable reports whether the endpoint could not be contacted at all, as
// opposed to answering with a body that failed to decode.
func (e *TransportError) Unreachable() bool {
	return isUnreachable(e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func isUnreachable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, net.ErrClosed) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, fragment := range []string{"connection refused", "no route to host", "i/o timeout", "context deadline exceeded"} {
		if strings.Contains(msg, fragment) {
			return true
		}
	}
	return false
}
