package llm

import (
	"context"
	"errors"
	"time"
)

// IsTransient reports whether a generation error is worth retrying.
// Rate limits, provider outages, and generic network failures are
// transient; credential problems, content rejection, and truncation are
// configuration issues that will not heal on retry. Context errors are
// never transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var cred *ErrInvalidCredential
	if errors.As(err, &cred) {
		return false
	}
	var rejected *ErrContentRejected
	if errors.As(err, &rejected) {
		return false
	}
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return false
	}
	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		return false
	}

	// Rate limits, outages, and anything unclassified (network) retry.
	return true
}

// RetryAfter extracts the provider-suggested wait from a rate-limit
// error, or 0 when none applies.
func RetryAfter(err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return rl.RetryAfter
	}
	return 0
}
