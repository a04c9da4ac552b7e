package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/saasapi/pkg/api"
)

// checkRetry maps a retry policy onto retryablehttp's hook.
func checkRetry(policy api.RetryPolicy) retryablehttp.CheckRetry {
	switch policy {
	case api.RetryNone:
		return retryNever
	case api.RetryConnectionOnly:
		return retryConnectionOnly
	default:
		return retryTransient
	}
}

// retryTransient retries what retryablehttp considers transient, plus 408.
func retryTransient(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if err == nil && ctx.Err() == nil && resp != nil && resp.StatusCode == http.StatusRequestTimeout {
		return true, nil
	}

	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// retryConnectionOnly retries only when no response was received.
func retryConnectionOnly(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err == nil {
		return false, nil
	}

	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

func retryNever(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return false, nil
}

// replayable reports whether the request body can be sent more than once.
func replayable(req *Request) bool {
	if req.Stream == nil {
		return true
	}

	_, ok := req.Stream.(io.Seeker)

	return ok
}

type attemptsKey struct{}

// withAttemptCounter attaches a counter that the request hook bumps on every
// attempt.
func withAttemptCounter(ctx context.Context) (context.Context, *atomic.Int32) {
	counter := &atomic.Int32{}

	return context.WithValue(ctx, attemptsKey{}, counter), counter
}

func attemptCounter(ctx context.Context) *atomic.Int32 {
	counter, _ := ctx.Value(attemptsKey{}).(*atomic.Int32)

	return counter
}

// requestHook records the attempt number and counts retries.
func (c *Client) requestHook(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if counter := attemptCounter(req.Context()); counter != nil {
		counter.Store(int32(attempt + 1)) //nolint:gosec // attempt is bounded by RetryMax
	}

	if attempt > 0 {
		c.metrics.observeRetry(c.vendor, req.Method)

		c.logger.Warn("Retrying HTTP request", map[string]interface{}{
			"method":  req.Method,
			"url":     req.URL.Redacted(),
			"attempt": attempt + 1,
		})
	}
}

// leveledLogger adapts api.Logger to retryablehttp.LeveledLogger. Debug and
// Info entries are dropped; the pipeline logs its own per-request entries.
type leveledLogger struct {
	logger api.Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fieldsFromPairs(keysAndValues))
}

func (l leveledLogger) Info(string, ...interface{}) {}

func (l leveledLogger) Debug(string, ...interface{}) {}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fieldsFromPairs(keysAndValues))
}

func fieldsFromPairs(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return fields
}
