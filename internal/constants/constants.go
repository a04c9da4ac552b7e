package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout bounds a whole request, including reading the body.
	DefaultHTTPTimeout = 60 * time.Second

	// DefaultConnectTimeout bounds the dial phase of a request.
	DefaultConnectTimeout = 60 * time.Second

	// DefaultKeepAlive is the TCP keep-alive period for pooled connections.
	DefaultKeepAlive = 30 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the number of retries after the initial attempt.
	DefaultRetryMax = 3

	// MaxRetryMax caps user supplied retry counts.
	MaxRetryMax = 10

	// DefaultRetryWaitMin is the first backoff interval.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the ceiling of the exponential backoff.
	DefaultRetryWaitMax = 30 * time.Second
)

// OAuth token handling.
const (
	// TokenRefreshThreshold is subtracted from a provider's expires_in so the
	// token is renewed slightly before the provider rejects it.
	TokenRefreshThreshold = 60 * time.Second

	// TokenTypeBearer is the default token type for stored tokens.
	TokenTypeBearer = "bearer"
)

// Header names and values.
const (
	HeaderAccept        = "Accept"
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderUserAgent     = "User-Agent"

	ContentTypeJSON = "application/json"

	// DefaultUserAgent is sent when the caller does not override it.
	DefaultUserAgent = "saasapi-go/1.0"
)

// HTTP status boundaries.
const (
	HTTPStatusOK              = 200
	HTTPStatusMultipleChoices = 300
)

// Observability names.
const (
	// SpanOperationName is the dd-trace operation name for every pipeline call.
	SpanOperationName = "http.request"

	// MetricsNamespace prefixes every prometheus collector.
	MetricsNamespace = "saasapi"
)

// Call outcomes reported to traces and metrics.
const (
	OutcomeSuccess            = "success"
	OutcomeServerError        = "server_error"
	OutcomeUnexpectedResponse = "unexpected_response"
	OutcomeTransportError     = "transport_error"
	OutcomeRequestError       = "request_error"
)
