// Package rippling is a client for the Rippling platform REST API.
package rippling

import (
	"fmt"

	"github.com/fivetwenty-io/saasapi/internal/auth"
	"github.com/fivetwenty-io/saasapi/internal/client"
	"github.com/fivetwenty-io/saasapi/internal/config"
	"github.com/fivetwenty-io/saasapi/pkg/api"
)

const (
	Name           = "rippling"
	DefaultBaseURL = "https://rest.ripplingapis.com"

	EnvAPIToken = "RIPPLING_API_TOKEN" //nolint:gosec // variable name, not a credential
	// EnvHost overrides DefaultBaseURL when set.
	EnvHost = "RIPPLING_HOST"
)

// Client is the entry point for the Rippling API.
type Client struct {
	core *client.Client

	departments *client.Resource[Department, CreateDepartmentRequest, UpdateDepartmentRequest]
	teams       *client.Resource[Team, CreateTeamRequest, UpdateTeamRequest]
}

// New creates a client authenticated with a static API token.
func New(token string, opts ...api.Option) (*Client, error) {
	cfg := api.NewConfig(Name, DefaultBaseURL, append([]api.Option{api.WithRetryPolicy(api.RetryTransient)}, opts...)...)

	core, err := client.New(cfg, auth.Bearer(auth.NewStaticTokenManager(token)))
	if err != nil {
		return nil, fmt.Errorf("creating %s client: %w", Name, err)
	}

	return &Client{
		core:        core,
		departments: client.NewResource[Department, CreateDepartmentRequest, UpdateDepartmentRequest](core, "rippling.departments", "departments"),
		teams:       client.NewResource[Team, CreateTeamRequest, UpdateTeamRequest](core, "rippling.teams", "teams"),
	}, nil
}

// NewFromEnv creates a client from RIPPLING_API_TOKEN, pointed at
// RIPPLING_HOST when that is set.
func NewFromEnv(opts ...api.Option) (*Client, error) {
	env := config.NewEnv()

	token, err := env.Require(EnvAPIToken)
	if err != nil {
		return nil, fmt.Errorf("creating %s client: %w", Name, err)
	}

	if host, ok := env.Lookup(EnvHost); ok {
		opts = append([]api.Option{api.WithBaseURL(host)}, opts...)
	}

	return New(token, opts...)
}

func (c *Client) BaseURL() string {
	return c.core.BaseURL()
}

func (c *Client) SetBaseURL(baseURL string) {
	c.core.SetBaseURL(baseURL)
}

func (c *Client) Workers() *Workers {
	return &Workers{client: c.core}
}

// Departments returns CRUD access to departments.
func (c *Client) Departments() *client.Resource[Department, CreateDepartmentRequest, UpdateDepartmentRequest] {
	return c.departments
}

// Teams returns CRUD access to teams.
func (c *Client) Teams() *client.Resource[Team, CreateTeamRequest, UpdateTeamRequest] {
	return c.teams
}
