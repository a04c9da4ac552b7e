// Package twilio is a client for the Twilio REST API.
//
// Message sends are not idempotent, so only failures that happen before a
// response arrives are retried.
package twilio

import (
	"fmt"

	"github.com/fivetwenty-io/saasapi/internal/auth"
	"github.com/fivetwenty-io/saasapi/internal/client"
	"github.com/fivetwenty-io/saasapi/internal/config"
	"github.com/fivetwenty-io/saasapi/pkg/api"
)

const (
	Name           = "twilio"
	DefaultBaseURL = "https://api.twilio.com"

	EnvUsername = "TWILIO_USERNAME"
	EnvPassword = "TWILIO_PASSWORD" //nolint:gosec // variable name, not a credential
)

// Client is the entry point for the Twilio API.
type Client struct {
	core *client.Client
}

// New creates a client using HTTP basic auth. username is usually the
// account SID or an API key SID.
func New(username, password string, opts ...api.Option) (*Client, error) {
	cfg := api.NewConfig(Name, DefaultBaseURL, append([]api.Option{api.WithRetryPolicy(api.RetryConnectionOnly)}, opts...)...)

	core, err := client.New(cfg, auth.BasicAuth{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("creating %s client: %w", Name, err)
	}

	return &Client{core: core}, nil
}

// NewFromEnv creates a client from TWILIO_USERNAME and TWILIO_PASSWORD.
func NewFromEnv(opts ...api.Option) (*Client, error) {
	values, err := config.NewEnv().RequireAll(EnvUsername, EnvPassword)
	if err != nil {
		return nil, fmt.Errorf("creating %s client: %w", Name, err)
	}

	return New(values[EnvUsername], values[EnvPassword], opts...)
}

func (c *Client) BaseURL() string {
	return c.core.BaseURL()
}

func (c *Client) SetBaseURL(baseURL string) {
	c.core.SetBaseURL(baseURL)
}

// Messages returns the messages API for an account.
func (c *Client) Messages(accountSID string) *Messages {
	return &Messages{client: c.core, accountSID: accountSID}
}
