package api

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fivetwenty-io/saasapi/internal/constants"
)

// RetryPolicy selects which failures the pipeline retries.
type RetryPolicy int

const (
	// RetryTransient retries connection errors, timeouts, 408, 429 and 5xx.
	RetryTransient RetryPolicy = iota
	// RetryConnectionOnly retries only when no response was received; every
	// HTTP response is surfaced immediately.
	RetryConnectionOnly
	// RetryNone sends every request exactly once.
	RetryNone
)

// String returns the policy name.
func (p RetryPolicy) String() string {
	switch p {
	case RetryTransient:
		return "transient"
	case RetryConnectionOnly:
		return "connection-only"
	case RetryNone:
		return "none"
	default:
		return fmt.Sprintf("RetryPolicy(%d)", int(p))
	}
}

// Config represents client configuration shared by every vendor client.
//
// Vendor constructors start from NewConfig with their default base URL and
// apply the caller's options on top. Timeouts apply per attempt; callers can
// bound a whole call, retries included, through the context they pass.
type Config struct {
	// Name identifies the vendor in logs, traces and metrics.
	Name string
	// BaseURL is prepended to every relative endpoint path.
	BaseURL string
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Headers are sent with every request, before per-request headers.
	Headers map[string]string

	// Timeout bounds a whole attempt; ConnectTimeout bounds the dial.
	Timeout        time.Duration
	ConnectTimeout time.Duration

	// RetryMax is the number of retries after the first attempt.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	RetryPolicy  RetryPolicy

	// Logger receives structured pipeline logs; Debug adds per-request entries.
	Logger Logger
	Debug  bool
	// AccessLog emits one info entry per request and one per response.
	AccessLog bool

	// RateLimit is the steady request rate per second; zero disables limiting.
	RateLimit float64
	RateBurst int

	// MetricsRegisterer, when set, receives the pipeline's prometheus collectors.
	MetricsRegisterer prometheus.Registerer
	// Tracing toggles a dd-trace span per call.
	Tracing bool
}

// Option mutates a Config.
type Option func(*Config)

// NewConfig returns the defaults for a vendor with the given base URL, with
// opts applied in order.
func NewConfig(name, baseURL string, opts ...Option) *Config {
	cfg := &Config{
		Name:           name,
		BaseURL:        baseURL,
		UserAgent:      constants.DefaultUserAgent,
		Headers:        map[string]string{},
		Timeout:        constants.DefaultHTTPTimeout,
		ConnectTimeout: constants.DefaultConnectTimeout,
		RetryMax:       constants.DefaultRetryMax,
		RetryWaitMin:   constants.DefaultRetryWaitMin,
		RetryWaitMax:   constants.DefaultRetryWaitMax,
		RetryPolicy:    RetryTransient,
		Logger:         NopLogger{},
		Tracing:        true,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// Validate checks the configuration before a client is built.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigRequired
	}

	err := validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.BaseURL, validation.Required, is.RequestURL),
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Nanosecond)),
		validation.Field(&c.ConnectTimeout, validation.Required, validation.Min(time.Nanosecond)),
		validation.Field(&c.RetryMax, validation.Min(0), validation.Max(constants.MaxRetryMax)),
		validation.Field(&c.RetryWaitMin, validation.Min(time.Duration(0))),
		validation.Field(&c.RetryWaitMax, validation.Min(c.RetryWaitMin)),
		validation.Field(&c.RetryPolicy, validation.In(RetryTransient, RetryConnectionOnly, RetryNone)),
		validation.Field(&c.RateLimit, validation.Min(0.0)),
		validation.Field(&c.RateBurst, validation.Min(0)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// WithBaseURL overrides the vendor's default base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Config) {
		c.UserAgent = userAgent
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *Config) {
		if c.Headers == nil {
			c.Headers = map[string]string{}
		}

		c.Headers[key] = value
	}
}

// WithTimeout sets the overall per-attempt timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithConnectTimeout sets the dial timeout.
func WithConnectTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.ConnectTimeout = timeout
	}
}

// WithRetryConfig sets the retry count and backoff bounds.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Config) {
		c.RetryMax = retryMax
		c.RetryWaitMin = waitMin
		c.RetryWaitMax = waitMax
	}
}

// WithRetryPolicy selects which failures are retried.
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(c *Config) {
		c.RetryPolicy = policy
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithDebug enables per-request debug logging.
func WithDebug(debug bool) Option {
	return func(c *Config) {
		c.Debug = debug
	}
}

// WithAccessLog toggles request and response access logging.
func WithAccessLog(enabled bool) Option {
	return func(c *Config) {
		c.AccessLog = enabled
	}
}

// WithRateLimit enables a client-side token bucket.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Config) {
		c.RateLimit = perSecond
		c.RateBurst = burst
	}
}

// WithMetrics registers the pipeline's collectors with registerer.
func WithMetrics(registerer prometheus.Registerer) Option {
	return func(c *Config) {
		c.MetricsRegisterer = registerer
	}
}

// WithTracing toggles per-call trace spans.
func WithTracing(enabled bool) Option {
	return func(c *Config) {
		c.Tracing = enabled
	}
}
