// Package commonroom is a client for the Common Room community API.
package commonroom

import (
	"fmt"

	"github.com/fivetwenty-io/saasapi/internal/auth"
	"github.com/fivetwenty-io/saasapi/internal/client"
	"github.com/fivetwenty-io/saasapi/internal/config"
	"github.com/fivetwenty-io/saasapi/pkg/api"
)

const (
	// Name identifies the vendor in traces, metrics and errors.
	Name = "commonroom"

	// DefaultBaseURL is the production API root.
	DefaultBaseURL = "https://api.commonroom.io/community/v1"

	// EnvAPIToken holds the bearer token read by NewFromEnv.
	EnvAPIToken = "COMMONROOM_API_TOKEN" //nolint:gosec // variable name, not a credential
)

// Client is the entry point for the Common Room API.
type Client struct {
	core *client.Client
}

// New creates a client authenticated with a static API token. Transient
// failures are retried.
func New(token string, opts ...api.Option) (*Client, error) {
	cfg := api.NewConfig(Name, DefaultBaseURL, append([]api.Option{api.WithRetryPolicy(api.RetryTransient)}, opts...)...)

	core, err := client.New(cfg, auth.Bearer(auth.NewStaticTokenManager(token)))
	if err != nil {
		return nil, fmt.Errorf("creating %s client: %w", Name, err)
	}

	return &Client{core: core}, nil
}

// NewFromEnv creates a client from COMMONROOM_API_TOKEN.
func NewFromEnv(opts ...api.Option) (*Client, error) {
	token, err := config.NewEnv().Require(EnvAPIToken)
	if err != nil {
		return nil, fmt.Errorf("creating %s client: %w", Name, err)
	}

	return New(token, opts...)
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.core.BaseURL()
}

// SetBaseURL points the client at another API root.
func (c *Client) SetBaseURL(baseURL string) {
	c.core.SetBaseURL(baseURL)
}

// Segments returns the segments API.
func (c *Client) Segments() *Segments {
	return &Segments{client: c.core}
}

// Activities returns the activities API.
func (c *Client) Activities() *Activities {
	return &Activities{client: c.core}
}

// Members returns the community members API.
func (c *Client) Members() *Members {
	return &Members{client: c.core}
}

// Beta returns endpoints Common Room marks as beta.
func (c *Client) Beta() *Beta {
	return &Beta{client: c.core}
}
