package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"rate limit", &ErrRateLimit{RetryAfter: time.Second}, true},
		{"provider unavailable", &ErrProviderUnavailable{Err: errors.New("503")}, true},
		{"plain network error", errors.New("connection reset"), true},
		{"invalid credential", &ErrInvalidCredential{Err: errors.New("401")}, false},
		{"content rejected", &ErrContentRejected{Err: errors.New("filtered")}, false},
		{"max tokens", &ErrMaxTokensExceeded{}, false},
		{"invalid response", &ErrInvalidResponse{Err: errors.New("schema")}, false},
		{"canceled", context.Canceled, false},
		{"deadline", context.DeadlineExceeded, false},
		{"wrapped credential", fmt.Errorf("generating: %w", &ErrInvalidCredential{Err: errors.New("403")}), false},
		{"wrapped rate limit", fmt.Errorf("generating: %w", &ErrRateLimit{}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.want {
				t.Fatalf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestRetryAfter(t *testing.T) {
	if d := RetryAfter(&ErrRateLimit{RetryAfter: 3 * time.Second}); d != 3*time.Second {
		t.Fatalf("expected 3s, got %s", d)
	}
	if d := RetryAfter(fmt.Errorf("wrapped: %w", &ErrRateLimit{RetryAfter: time.Second})); d != time.Second {
		t.Fatalf("expected 1s from wrapped error, got %s", d)
	}
	if d := RetryAfter(errors.New("plain")); d != 0 {
		t.Fatalf("expected 0 for non-rate-limit error, got %s", d)
	}
	if d := RetryAfter(nil); d != 0 {
		t.Fatalf("expected 0 for nil, got %s", d)
	}
}
