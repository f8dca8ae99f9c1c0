package httpclient

import (
	"net/http"
	"time"
)

// RetryPolicy controls how many times a send is retried and how long the
// loop waits between attempts. It is a plain value injected at construction
// so endpoints can be tuned independently and tests can run with zero waits.
type RetryPolicy struct {
	// MaxRetries bounds the retries after the initial send, so a policy of
	// N performs at most N+1 sends.
	MaxRetries int
	// BaseWait is the unit of the exponential backoff. Attempt n waits
	// 2^(n-1) * BaseWait; attempt 0 waits nothing.
	BaseWait time.Duration
	// WaitCap is the ceiling the backoff never exceeds.
	WaitCap time.Duration
	// Retryable decides whether a status code is worth another attempt.
	// Nil means the default: 429 and any 5xx.
	Retryable func(statusCode int) bool
}

const (
	defaultMaxRetries = 7
	defaultBaseWait   = 100 * time.Millisecond
	defaultWaitCap    = 12800 * time.Millisecond
)

// DefaultRetryPolicy returns the production policy: 7 retries, 100ms base,
// 12.8s cap, retrying on 429 and 5xx.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: defaultMaxRetries,
		BaseWait:   defaultBaseWait,
		WaitCap:    defaultWaitCap,
	}
}

// Wait returns the backoff before the given attempt. Attempt 0 is the
// initial send and never waits.
func (p RetryPolicy) Wait(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	wait := p.BaseWait << (attempt - 1)
	if p.WaitCap > 0 && wait > p.WaitCap {
		wait = p.WaitCap
	}
	return wait
}

func (p RetryPolicy) retryable(statusCode int) bool {
	if p.Retryable != nil {
		return p.Retryable(statusCode)
	}
	return statusCode == http.StatusTooManyRequests ||
		(statusCode >= 500 && statusCode <= 599)
}
