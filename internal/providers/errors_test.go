package providers

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestRateLimitErrorString(t *testing.T) {
	err := &RateLimitError{
		Provider:   "p",
		StatusCode: 429,
		Message:    "rate limited",
	}
	if got := err.Error(); got == "" || got == "rate limited" {
		t.Fatalf("expected status in error string, got %q", got)
	}

	rl, ok := AsRateLimitError(fmt.Errorf("wrapped: %w", err))
	if !ok || rl == nil {
		t.Fatalf("expected to unwrap rate limit error")
	}

	noStatus := &RateLimitError{}
	if got := noStatus.Error(); got == "" {
		t.Fatalf("expected fallback message")
	}
}

func TestStatusErrorString(t *testing.T) {
	withBody := &StatusError{Provider: "sportradar", StatusCode: 500, Body: "boom"}
	if got := withBody.Error(); got != "sportradar: unexpected status 500: boom" {
		t.Fatalf("unexpected error string %q", got)
	}
	bare := &StatusError{Provider: "sportradar", StatusCode: 404}
	if got := bare.Error(); got != "sportradar: unexpected status 404" {
		t.Fatalf("unexpected error string %q", got)
	}
}

func TestIsUpstreamFailure(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"status", &StatusError{StatusCode: 503}, true},
		{"rate_limit", &RateLimitError{StatusCode: 429}, true},
		{"wrapped_transport", Unavailable("sportradar", context.DeadlineExceeded), true},
		{"provider_unavailable", ErrProviderUnavailable, true},
		{"plain", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsUpstreamFailure(tc.err); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestUnavailableKeepsCause(t *testing.T) {
	err := Unavailable("sportradar", context.Canceled)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cause to be preserved, got %v", err)
	}
	if Unavailable("sportradar", nil) != nil {
		t.Fatalf("expected nil for nil cause")
	}
}
