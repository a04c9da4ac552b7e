// Package http implements the request pipeline shared by every vendor client:
// URL resolution, auth, retry with backoff, tracing, metrics and response
// classification.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/fivetwenty-io/saasapi/internal/auth"
	"github.com/fivetwenty-io/saasapi/internal/constants"
	"github.com/fivetwenty-io/saasapi/pkg/api"
)

// Client is the HTTP client for vendor API calls.
type Client struct {
	mu      sync.RWMutex
	baseURL string

	vendor       string
	credential   auth.Credential
	retryClient  *retryablehttp.Client
	logger       api.Logger
	debug        bool
	userAgent    string
	headers      map[string]string
	tracing      bool
	metrics      *Metrics
	interceptors *Interceptors

	timeout        time.Duration
	connectTimeout time.Duration
	retryMax       int
	retryWaitMin   time.Duration
	retryWaitMax   time.Duration
	retryPolicy    api.RetryPolicy
	registerer     prometheus.Registerer
}

// Request represents one pipeline call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	// Body is serialized as JSON.
	Body interface{}
	// Stream is sent as-is. Streams that are not io.Seeker are sent once and
	// never retried.
	Stream    io.Reader
	Headers   map[string]string
	ErrorMode api.ErrorMode
	// Name labels the call in traces.
	Name string
}

// Response represents a buffered HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Attempts   int
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger api.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables debug logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the user agent.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig sets retry configuration.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.retryMax = retryMax
		c.retryWaitMin = retryWaitMin
		c.retryWaitMax = retryWaitMax
	}
}

// WithRetryPolicy selects which failures are retried.
func WithRetryPolicy(policy api.RetryPolicy) Option {
	return func(c *Client) {
		c.retryPolicy = policy
	}
}

// WithTimeouts sets the per-attempt and dial timeouts. Non-positive values
// keep the defaults.
func WithTimeouts(timeout, connectTimeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}

		if connectTimeout > 0 {
			c.connectTimeout = connectTimeout
		}
	}
}

// WithVendor names the vendor in logs, traces and metrics.
func WithVendor(vendor string) Option {
	return func(c *Client) {
		c.vendor = vendor
	}
}

// WithHeaders sets headers sent with every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for key, value := range headers {
			c.headers[key] = value
		}
	}
}

// WithRateLimit waits on a token bucket before every call.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			return
		}

		if burst < 1 {
			burst = 1
		}

		c.interceptors.OnRequest(RateLimitInterceptor(rate.NewLimiter(rate.Limit(perSecond), burst)))
	}
}

// WithMetrics registers pipeline collectors with registerer.
func WithMetrics(registerer prometheus.Registerer) Option {
	return func(c *Client) {
		c.registerer = registerer
	}
}

// WithTracing toggles per-call spans.
func WithTracing(enabled bool) Option {
	return func(c *Client) {
		c.tracing = enabled
	}
}

// WithRequestInterceptor appends a request interceptor.
func WithRequestInterceptor(interceptor RequestInterceptor) Option {
	return func(c *Client) {
		c.interceptors.OnRequest(interceptor)
	}
}

// WithResponseInterceptor appends a response interceptor.
func WithResponseInterceptor(interceptor ResponseInterceptor) Option {
	return func(c *Client) {
		c.interceptors.OnResponse(interceptor)
	}
}

// NewClient creates a new HTTP client. A nil credential sends requests
// without authentication.
func NewClient(baseURL string, credential auth.Credential, opts ...Option) *Client {
	client := &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		credential:     credential,
		logger:         api.NopLogger{},
		userAgent:      constants.DefaultUserAgent,
		headers:        map[string]string{},
		tracing:        true,
		interceptors:   NewInterceptors(),
		timeout:        constants.DefaultHTTPTimeout,
		connectTimeout: constants.DefaultConnectTimeout,
		retryMax:       constants.DefaultRetryMax,
		retryWaitMin:   constants.DefaultRetryWaitMin,
		retryWaitMax:   constants.DefaultRetryWaitMax,
		retryPolicy:    api.RetryTransient,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.logger == nil {
		client.logger = api.NopLogger{}
	}

	if client.registerer != nil {
		metrics, err := NewMetrics(client.registerer)
		if err != nil {
			client.logger.Warn("Metrics disabled", map[string]interface{}{"error": err.Error()})
		} else {
			client.metrics = metrics
		}
	}

	client.retryClient = client.newRetryClient()

	return client
}

func (c *Client) newRetryClient() *retryablehttp.Client {
	transport := cleanhttp.DefaultPooledTransport()
	transport.DialContext = (&net.Dialer{
		Timeout:   c.connectTimeout,
		KeepAlive: constants.DefaultKeepAlive,
	}).DialContext

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = &http.Client{
		Transport: transport,
		Timeout:   c.timeout,
	}
	retryClient.Logger = leveledLogger{logger: c.logger}
	retryClient.RetryMax = c.retryMax
	retryClient.RetryWaitMin = c.retryWaitMin
	retryClient.RetryWaitMax = c.retryWaitMax
	retryClient.CheckRetry = checkRetry(c.retryPolicy)
	retryClient.Backoff = retryablehttp.DefaultBackoff
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.RequestLogHook = c.requestHook

	return retryClient
}

// BaseURL returns the current base URL.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.baseURL
}

// SetBaseURL replaces the base URL. Meant for setup, before calls are issued.
func (c *Client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.baseURL = strings.TrimRight(baseURL, "/")
}

// Vendor returns the vendor name.
func (c *Client) Vendor() string {
	return c.vendor
}

// Credential returns the configured credential.
func (c *Client) Credential() auth.Credential {
	return c.credential
}

// Do performs an HTTP request. Non-2xx responses return both the response and
// an *api.ServerError or *api.UnexpectedResponseError, per req.ErrorMode.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if req.Method == "" {
		return nil, constants.ErrEmptyMethod
	}

	if req.Body != nil && req.Stream != nil {
		return nil, constants.ErrBodyAndStream
	}

	target, err := c.resolveURL(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	var payload []byte

	if req.Body != nil {
		payload, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	span, ctx := c.startSpan(ctx, req, target)
	start := time.Now()

	resp, err := c.execute(ctx, req, target, payload)

	status, attempts, outcome := 0, 0, constants.OutcomeRequestError

	transportErr := &api.TransportError{}

	switch {
	case resp != nil:
		status, attempts = resp.StatusCode, resp.Attempts
		outcome = outcomeFor(status, req.ErrorMode)
	case errors.As(err, &transportErr):
		attempts = transportErr.Attempts
		outcome = constants.OutcomeTransportError
	}

	span.finish(status, attempts, outcome, err)
	c.metrics.observeCall(c.vendor, req.Method, status, outcome, time.Since(start))

	return resp, err
}

func (c *Client) execute(ctx context.Context, req *Request, target string, payload []byte) (*Response, error) {
	httpResp, sent, attempts, err := c.send(ctx, req, target, payload)
	if err != nil {
		return nil, err
	}

	if httpResp.StatusCode == http.StatusUnauthorized && c.refreshable(req) {
		refresher, _ := c.credential.(auth.Refresher)

		refreshErr := refresher.Refresh(ctx, sent)
		if refreshErr != nil {
			c.logger.Warn("Token refresh after 401 failed", map[string]interface{}{
				"url":   redactURL(target),
				"error": refreshErr.Error(),
			})
		} else {
			_, _ = io.Copy(io.Discard, httpResp.Body)
			_ = httpResp.Body.Close()

			var more int

			httpResp, sent, more, err = c.send(ctx, req, target, payload)
			attempts += more

			if err != nil {
				transportErr := &api.TransportError{}
				if errors.As(err, &transportErr) {
					transportErr.Attempts = attempts
				}

				return nil, err
			}
		}
	}

	return c.handleResponse(ctx, req, sent, httpResp, attempts)
}

// send builds and sends the request, with retry when the body is replayable.
// It returns the request as sent, for interceptors and logging.
func (c *Client) send(ctx context.Context, req *Request, target string, payload []byte) (*http.Response, *http.Request, int, error) {
	ctx, counter := withAttemptCounter(ctx)

	if !replayable(req) {
		httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, req.Stream)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("failed to create request: %w", err)
		}

		err = c.prepare(ctx, req, httpReq, false)
		if err != nil {
			return nil, nil, 0, err
		}

		c.logRequest(httpReq)

		resp, err := c.retryClient.HTTPClient.Do(httpReq)
		if err != nil {
			return nil, httpReq, 1, c.transportError(req.Method, target, 1, err)
		}

		return resp, httpReq, 1, nil
	}

	var body interface{}

	switch {
	case payload != nil:
		body = payload
	case req.Stream != nil:
		body = req.Stream
	}

	retryReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	err = c.prepare(ctx, req, retryReq.Request, payload != nil)
	if err != nil {
		return nil, nil, 0, err
	}

	c.logRequest(retryReq.Request)

	resp, err := c.retryClient.Do(retryReq)

	attempts := int(counter.Load())
	if attempts == 0 {
		attempts = 1
	}

	if err != nil {
		// PassthroughErrorHandler hands back the last response alongside a
		// CheckRetry error.
		if resp != nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}

		return nil, retryReq.Request, attempts, c.transportError(req.Method, target, attempts, err)
	}

	return resp, retryReq.Request, attempts, nil
}

// prepare applies headers, credentials and request interceptors.
func (c *Client) prepare(ctx context.Context, req *Request, httpReq *http.Request, jsonBody bool) error {
	httpReq.Header.Set(constants.HeaderAccept, constants.ContentTypeJSON)
	httpReq.Header.Set(constants.HeaderUserAgent, c.userAgent)

	if jsonBody {
		httpReq.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	}

	for key, value := range c.headers {
		httpReq.Header.Set(key, value)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.credential != nil {
		err := c.credential.Apply(ctx, httpReq)
		if err != nil {
			return fmt.Errorf("failed to apply credentials: %w", err)
		}
	}

	err := c.interceptors.RunRequest(ctx, httpReq)
	if err != nil {
		return fmt.Errorf("%w: %w", constants.ErrRequestIntercept, err)
	}

	return nil
}

func (c *Client) handleResponse(ctx context.Context, req *Request, sent *http.Request, httpResp *http.Response, attempts int) (*Response, error) {
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, c.transportError(req.Method, sent.URL.String(), attempts, fmt.Errorf("failed to read response body: %w", err))
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
		Attempts:   attempts,
	}

	c.logResponse(sent, resp)

	err = c.interceptors.RunResponse(ctx, sent, resp)
	if err != nil {
		return resp, fmt.Errorf("%w: %w", constants.ErrResponseIntercept, err)
	}

	if resp.StatusCode < constants.HTTPStatusOK || resp.StatusCode >= constants.HTTPStatusMultipleChoices {
		if req.ErrorMode == api.ErrorModeUnexpected {
			httpResp.Body = io.NopCloser(bytes.NewReader(body))

			return resp, &api.UnexpectedResponseError{
				StatusCode: resp.StatusCode,
				Header:     resp.Headers,
				Response:   httpResp,
			}
		}

		return resp, &api.ServerError{
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	return resp, nil
}

// refreshable reports whether a 401 for req may be answered by refreshing the
// credential and sending once more.
func (c *Client) refreshable(req *Request) bool {
	refresher, ok := c.credential.(auth.Refresher)

	return ok && refresher.RefreshOnUnauthorized() && replayable(req)
}

// resolveURL joins path onto the base URL unless path is already absolute,
// and appends the encoded query.
func (c *Client) resolveURL(path string, query url.Values) (string, error) {
	var target string

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		target = path
	} else {
		base := c.BaseURL()
		if base == "" {
			return "", constants.ErrNoBaseURL
		}

		target = base + "/" + strings.TrimLeft(path, "/")
	}

	if len(query) > 0 {
		separator := "?"
		if strings.Contains(target, "?") {
			separator = "&"
		}

		target += separator + query.Encode()
	}

	return target, nil
}

func (c *Client) transportError(method, target string, attempts int, err error) error {
	return &api.TransportError{
		Method:   method,
		URL:      redactURL(target),
		Attempts: attempts,
		Err:      err,
	}
}

func (c *Client) logRequest(req *http.Request) {
	if !c.debug {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"vendor": c.vendor,
		"method": req.Method,
		"url":    req.URL.Redacted(),
	})
}

func (c *Client) logResponse(req *http.Request, resp *Response) {
	if !c.debug {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"vendor":      c.vendor,
		"method":      req.Method,
		"url":         req.URL.Redacted(),
		"status_code": resp.StatusCode,
		"attempts":    resp.Attempts,
		"body_bytes":  len(resp.Body),
	})
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   path,
		Body:   body,
	})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPatch,
		Path:   path,
		Body:   body,
	})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
	})
}

func outcomeFor(status int, mode api.ErrorMode) string {
	switch {
	case status >= constants.HTTPStatusOK && status < constants.HTTPStatusMultipleChoices:
		return constants.OutcomeSuccess
	case mode == api.ErrorModeUnexpected:
		return constants.OutcomeUnexpectedResponse
	default:
		return constants.OutcomeServerError
	}
}

func redactURL(target string) string {
	parsed, err := url.Parse(target)
	if err != nil {
		return target
	}

	return parsed.Redacted()
}
