// Package client holds the core handle every vendor resource accessor shares,
// and the generic executor that turns an endpoint descriptor into a typed
// call.
package client

import (
	"github.com/fivetwenty-io/saasapi/internal/auth"
	"github.com/fivetwenty-io/saasapi/internal/http"
	"github.com/fivetwenty-io/saasapi/pkg/api"
)

// Client is the core handle shared by pointer across a vendor's resource
// accessors. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	config     *api.Config
	credential auth.Credential
}

// New validates cfg and builds the request pipeline around credential.
func New(cfg *api.Config, credential auth.Credential) (*Client, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(cfg.BaseURL, credential, createHTTPClientOptions(cfg)...)

	return &Client{
		httpClient: httpClient,
		config:     cfg,
		credential: credential,
	}, nil
}

func createHTTPClientOptions(cfg *api.Config) []http.Option {
	httpOpts := []http.Option{
		http.WithVendor(cfg.Name),
		http.WithRetryConfig(cfg.RetryMax, cfg.RetryWaitMin, cfg.RetryWaitMax),
		http.WithRetryPolicy(cfg.RetryPolicy),
		http.WithTimeouts(cfg.Timeout, cfg.ConnectTimeout),
		http.WithTracing(cfg.Tracing),
		http.WithHeaders(cfg.Headers),
	}

	if cfg.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(cfg.Logger))

		if cfg.AccessLog {
			httpOpts = append(httpOpts,
				http.WithRequestInterceptor(http.LoggingInterceptor(cfg.Logger)),
				http.WithResponseInterceptor(http.LoggingResponseInterceptor(cfg.Logger)),
			)
		}
	}

	if cfg.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if cfg.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(cfg.UserAgent))
	}

	if cfg.RateLimit > 0 {
		httpOpts = append(httpOpts, http.WithRateLimit(cfg.RateLimit, cfg.RateBurst))
	}

	if cfg.MetricsRegisterer != nil {
		httpOpts = append(httpOpts, http.WithMetrics(cfg.MetricsRegisterer))
	}

	return httpOpts
}

// HTTP returns the underlying pipeline.
func (c *Client) HTTP() *http.Client {
	return c.httpClient
}

// Config returns the configuration the client was built with.
func (c *Client) Config() *api.Config {
	return c.config
}

// Credential returns the credential attached to every request.
func (c *Client) Credential() auth.Credential {
	return c.credential
}

// BaseURL returns the current base URL.
func (c *Client) BaseURL() string {
	return c.httpClient.BaseURL()
}

// SetBaseURL overrides the base URL. Call it during setup, before the client
// is shared.
func (c *Client) SetBaseURL(baseURL string) {
	c.httpClient.SetBaseURL(baseURL)
}
