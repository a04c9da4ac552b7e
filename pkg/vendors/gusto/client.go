// Package gusto is a client for the Gusto payroll API. Requests carry a
// rotating OAuth2 access token.
package gusto

import (
	"context"
	"fmt"
	"time"

	"github.com/fivetwenty-io/saasapi/internal/auth"
	"github.com/fivetwenty-io/saasapi/internal/client"
	"github.com/fivetwenty-io/saasapi/internal/config"
	"github.com/fivetwenty-io/saasapi/pkg/api"
)

const (
	Name           = "gusto"
	DefaultBaseURL = "https://api.gusto.com"
	AuthURL        = "https://api.gusto.com/oauth/authorize"
	TokenURL       = "https://api.gusto.com/oauth/token" //nolint:gosec // endpoint, not a credential

	// APIVersionHeader pins the API version on every request.
	APIVersionHeader = "X-Gusto-API-Version"
	APIVersion       = "v1.0.0"

	EnvClientID     = "GUSTO_CLIENT_ID"
	EnvClientSecret = "GUSTO_CLIENT_SECRET" //nolint:gosec // variable name, not a credential
	EnvRedirectURI  = "GUSTO_REDIRECT_URI"
)

// AccessToken is an OAuth2 token pair issued by Gusto.
type AccessToken = auth.Token

// Credentials identify the OAuth application and seed the token pair.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	AccessToken  string
	RefreshToken string

	// OnRefresh receives every newly issued pair so it can be persisted.
	OnRefresh func(AccessToken)

	// AuthURL and TokenURL override the OAuth endpoints.
	AuthURL  string
	TokenURL string
}

// Client is the entry point for the Gusto API.
type Client struct {
	core   *client.Client
	tokens *auth.OAuth2TokenManager
}

// New creates a client from OAuth application credentials and a token pair.
// Automatic refresh starts disabled.
func New(creds Credentials, opts ...api.Option) (*Client, error) {
	if creds.AuthURL == "" {
		creds.AuthURL = AuthURL
	}

	if creds.TokenURL == "" {
		creds.TokenURL = TokenURL
	}

	tokens := auth.NewOAuth2TokenManager(&auth.OAuth2Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		RedirectURL:  creds.RedirectURI,
		AuthURL:      creds.AuthURL,
		TokenURL:     creds.TokenURL,
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
		OnRefresh:    creds.OnRefresh,
	})

	defaults := []api.Option{
		api.WithRetryPolicy(api.RetryTransient),
		api.WithHeader(APIVersionHeader, APIVersion),
	}

	core, err := client.New(api.NewConfig(Name, DefaultBaseURL, append(defaults, opts...)...), auth.Bearer(tokens))
	if err != nil {
		return nil, fmt.Errorf("creating %s client: %w", Name, err)
	}

	return &Client{core: core, tokens: tokens}, nil
}

// NewFromEnv reads the OAuth application from GUSTO_CLIENT_ID,
// GUSTO_CLIENT_SECRET and GUSTO_REDIRECT_URI. The token pair is supplied by
// the caller, usually from its own storage.
func NewFromEnv(accessToken, refreshToken string, opts ...api.Option) (*Client, error) {
	values, err := config.NewEnv().RequireAll(EnvClientID, EnvClientSecret, EnvRedirectURI)
	if err != nil {
		return nil, fmt.Errorf("creating %s client: %w", Name, err)
	}

	return New(Credentials{
		ClientID:     values[EnvClientID],
		ClientSecret: values[EnvClientSecret],
		RedirectURI:  values[EnvRedirectURI],
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, opts...)
}

func (c *Client) BaseURL() string {
	return c.core.BaseURL()
}

func (c *Client) SetBaseURL(baseURL string) {
	c.core.SetBaseURL(baseURL)
}

// UserConsentURL returns the URL a user visits to grant access, and the
// state value Gusto echoes back on the redirect.
func (c *Client) UserConsentURL(scopes ...string) (string, string) {
	return c.tokens.AuthCodeURL(scopes...)
}

// GetAccessToken exchanges the code from the consent redirect for a token
// pair and starts using it.
func (c *Client) GetAccessToken(ctx context.Context, code string) (AccessToken, error) {
	return c.tokens.Exchange(ctx, code)
}

// RefreshAccessToken trades the stored refresh token for a new pair.
func (c *Client) RefreshAccessToken(ctx context.Context) (AccessToken, error) {
	err := c.tokens.RefreshToken(ctx)
	if err != nil {
		return AccessToken{}, err
	}

	token, _ := c.tokens.Token()

	return token, nil
}

// SetAutoAccessTokenRefresh renews expired tokens before requests and once
// after a 401.
func (c *Client) SetAutoAccessTokenRefresh(enabled bool) {
	c.tokens.SetAutoRefresh(enabled)
}

// SetExpiresIn records the lifetime Gusto reported for the current token.
func (c *Client) SetExpiresIn(expiresIn int64) {
	c.tokens.SetExpiresIn(expiresIn)
}

// ExpiresAt reports when the current token should be renewed, if known.
func (c *Client) ExpiresAt() (time.Time, bool) {
	return c.tokens.ExpiresAt()
}

// IsExpired reports whether the current token is known to be expired.
func (c *Client) IsExpired() bool {
	return c.tokens.IsExpired()
}

func (c *Client) CurrentUser() *CurrentUser {
	return &CurrentUser{client: c.core}
}

func (c *Client) Companies() *Companies {
	return &Companies{client: c.core}
}

func (c *Client) Employees() *Employees {
	return &Employees{client: c.core}
}
