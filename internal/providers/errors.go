package providers

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrProviderUnavailable is returned when no provider is configured.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrUpstreamUnavailable marks transport, status and decode failures from the upstream API.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// StatusError captures a non-2xx upstream response.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error { return ErrUpstreamUnavailable }

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

func (e *RateLimitError) Unwrap() error { return ErrUpstreamUnavailable }

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// IsUpstreamFailure reports whether err means the upstream data could not be obtained.
func IsUpstreamFailure(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable) || errors.Is(err, ErrProviderUnavailable)
}

// Unavailable wraps a transport or decode failure so IsUpstreamFailure recognizes it.
func Unavailable(provider string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", provider, ErrUpstreamUnavailable, err)
}
