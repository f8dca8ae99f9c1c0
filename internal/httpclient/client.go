package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/truna-id/fraudcheck/internal/metrics"
)

// Reply is what a completed send hands back: the last status code received,
// its headers and the drained body. The caller decides what a non-200
// status means; this client only decides whether to retry it.
type Reply struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client posts signed request bodies to the provider with bounded
// exponential backoff. The underlying http.Client is injected and reused
// across calls; connection pooling is its concern, not ours.
type Client struct {
	httpClient *http.Client
	policy     RetryPolicy
	metrics    *metrics.Metrics
}

func New(httpClient *http.Client, policy RetryPolicy, m *metrics.Metrics) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if m == nil {
		m = metrics.New(prometheus.NewRegistry())
	}
	return &Client{httpClient: httpClient, policy: policy, metrics: m}
}

// Post sends body to url, retrying on 429, 5xx and timeouts under the
// configured policy. The same body bytes are reused on every attempt; only
// the wait differs. Headers are applied to every attempt.
//
// The returned error is non-nil only for I/O failures that outlived the
// retry budget (a timeout on the final attempt) or were never retryable
// (any non-timeout I/O error), and for a cancelled context. Terminal
// statuses are not errors here; the caller maps them.
func (c *Client) Post(ctx context.Context, url string, body []byte, headers map[string]string) (*Reply, error) {
	var reply *Reply

	for attempt := 0; attempt <= c.policy.MaxRetries; attempt++ {
		if err := c.wait(ctx, c.policy.Wait(attempt)); err != nil {
			return nil, err
		}

		resp, err := c.send(ctx, url, body, headers)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.metrics.SendError.Inc()
			if !isTimeout(err) {
				return nil, errors.Wrap(err, "provider send failed")
			}
			if attempt == c.policy.MaxRetries {
				c.metrics.MaxRetriesReached.Inc()
				return nil, errors.Wrap(err, "provider send timed out after final attempt")
			}
			logrus.Warnf("provider send timed out on attempt %d, retrying: %v", attempt, err)
			c.metrics.Retries.Inc()
			continue
		}

		c.metrics.SendOK.Inc()
		reply = resp

		if resp.StatusCode == http.StatusOK || !c.policy.retryable(resp.StatusCode) {
			return reply, nil
		}

		if attempt == c.policy.MaxRetries {
			c.metrics.MaxRetriesReached.Inc()
			logrus.Warnf("provider still returning %d after %d attempts, giving up", resp.StatusCode, attempt+1)
			return reply, nil
		}
		logrus.Warnf("provider returned %d on attempt %d, retrying", resp.StatusCode, attempt)
		c.metrics.Retries.Inc()
	}

	return reply, nil
}

func (c *Client) send(ctx context.Context, url string, body []byte, headers map[string]string) (*Reply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(closer io.ReadCloser) {
		if cerr := closer.Close(); cerr != nil {
			logrus.Error(cerr)
		}
	}(resp.Body)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Reply{StatusCode: resp.StatusCode, Headers: resp.Header, Body: respBody}, nil
}

// wait blocks for the backoff duration or until the context is cancelled,
// whichever comes first. Cancellation aborts the retry loop immediately
// rather than completing the pending attempt.
func (c *Client) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// DescribeStatus turns a terminal status code into the human-readable
// description carried on failure results.
func DescribeStatus(statusCode int) string {
	switch {
	case statusCode >= 300 && statusCode <= 399:
		return fmt.Sprintf("provider returned unexpected redirection: %d", statusCode)
	case statusCode >= 400 && statusCode <= 499:
		return fmt.Sprintf("provider rejected the request: %d", statusCode)
	case statusCode >= 500 && statusCode <= 599:
		return fmt.Sprintf("provider server error: %d", statusCode)
	default:
		return fmt.Sprintf("unhandled provider HTTP status code: %d", statusCode)
	}
}
