package http

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/fivetwenty-io/saasapi/pkg/api"
)

// RequestInterceptor is called with the fully built request, after auth and
// headers are applied and before it is sent. Returning an error vetoes the
// call.
type RequestInterceptor func(ctx context.Context, req *http.Request) error

// ResponseInterceptor is called with the buffered response of every call that
// received one.
type ResponseInterceptor func(ctx context.Context, req *http.Request, resp *Response) error

// Interceptors holds the hooks run around every send, in registration order.
// Hooks are registered during client construction only.
type Interceptors struct {
	onRequest  []RequestInterceptor
	onResponse []ResponseInterceptor
}

func NewInterceptors() *Interceptors {
	return &Interceptors{}
}

// OnRequest registers a request hook.
func (i *Interceptors) OnRequest(interceptor RequestInterceptor) {
	i.onRequest = append(i.onRequest, interceptor)
}

// OnResponse registers a response hook.
func (i *Interceptors) OnResponse(interceptor ResponseInterceptor) {
	i.onResponse = append(i.onResponse, interceptor)
}

// RunRequest stops at the first hook that fails.
func (i *Interceptors) RunRequest(ctx context.Context, req *http.Request) error {
	for n, interceptor := range i.onRequest {
		if err := interceptor(ctx, req); err != nil {
			return fmt.Errorf("request hook %d: %w", n, err)
		}
	}

	return nil
}

// RunResponse stops at the first hook that fails.
func (i *Interceptors) RunResponse(ctx context.Context, req *http.Request, resp *Response) error {
	for n, interceptor := range i.onResponse {
		if err := interceptor(ctx, req, resp); err != nil {
			return fmt.Errorf("response hook %d: %w", n, err)
		}
	}

	return nil
}

// LoggingInterceptor logs every outgoing request at info level.
func LoggingInterceptor(logger api.Logger) RequestInterceptor {
	return func(_ context.Context, req *http.Request) error {
		logger.Info("API Request", map[string]interface{}{
			"method": req.Method,
			"path":   req.URL.Path,
		})

		return nil
	}
}

// LoggingResponseInterceptor logs responses, at error level for non-2xx.
func LoggingResponseInterceptor(logger api.Logger) ResponseInterceptor {
	return func(_ context.Context, req *http.Request, resp *Response) error {
		fields := map[string]interface{}{
			"method":      req.Method,
			"path":        req.URL.Path,
			"status_code": resp.StatusCode,
			"attempts":    resp.Attempts,
		}

		if resp.StatusCode >= http.StatusMultipleChoices {
			logger.Error("API Response Error", fields)
		} else {
			logger.Info("API Response", fields)
		}

		return nil
	}
}

// RateLimitInterceptor waits on limiter before each call, giving up when ctx
// is done.
func RateLimitInterceptor(limiter *rate.Limiter) RequestInterceptor {
	return func(ctx context.Context, _ *http.Request) error {
		err := limiter.Wait(ctx)
		if err != nil {
			return fmt.Errorf("waiting for rate limiter: %w", err)
		}

		return nil
	}
}
