package auth

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/fivetwenty-io/saasapi/internal/constants"
)

// OAuth2Config configures a rotating OAuth2 token pair.
type OAuth2Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthURL      string
	TokenURL     string
	Scopes       []string

	// AccessToken and RefreshToken seed the store, typically from a pair the
	// caller persisted after a previous run.
	AccessToken  string
	RefreshToken string

	// AutoRefresh renews known-expired tokens before sending and retries once
	// after a 401.
	AutoRefresh bool

	// OnRefresh receives every token stored by a refresh or code exchange.
	OnRefresh func(token Token)

	// HTTPClient is used for token endpoint calls.
	HTTPClient *http.Client

	// RefreshThreshold is subtracted from expires_in.
	RefreshThreshold time.Duration
}

// OAuth2TokenManager manages a rotating access/refresh token pair through
// golang.org/x/oauth2. Reads take a read lock on the store; refreshes are
// serialized so concurrent 401s do not stampede the token endpoint.
type OAuth2TokenManager struct {
	config      *OAuth2Config
	oauth       *oauth2.Config
	store       *TokenStore
	refreshMu   sync.Mutex
	autoRefresh atomic.Bool
}

// NewOAuth2TokenManager creates a new OAuth2 token manager.
func NewOAuth2TokenManager(config *OAuth2Config) *OAuth2TokenManager {
	if config.RefreshThreshold == 0 {
		config.RefreshThreshold = constants.TokenRefreshThreshold
	}

	manager := &OAuth2TokenManager{
		config: config,
		oauth: &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			RedirectURL:  config.RedirectURL,
			Scopes:       config.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   config.AuthURL,
				TokenURL:  config.TokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		store: NewTokenStore(),
	}

	manager.autoRefresh.Store(config.AutoRefresh)

	if config.AccessToken != "" || config.RefreshToken != "" {
		manager.store.Set(&Token{
			AccessToken:  config.AccessToken,
			RefreshToken: config.RefreshToken,
			TokenType:    constants.TokenTypeBearer,
		})
	}

	return manager
}

// GetToken returns the current access token. With auto-refresh on, a token
// that is known to be expired is renewed first.
func (m *OAuth2TokenManager) GetToken(ctx context.Context) (string, error) {
	token := m.store.Get()

	if m.AutoRefresh() && token != nil && token.Expired() && token.RefreshToken != "" {
		err := m.refresh(ctx, func(current *Token) bool { return current == token })
		if err != nil {
			return "", err
		}

		token = m.store.Get()
	}

	if token == nil {
		return "", nil
	}

	return token.AccessToken, nil
}

// RefreshToken exchanges the stored refresh token for a new pair.
func (m *OAuth2TokenManager) RefreshToken(ctx context.Context) error {
	return m.refresh(ctx, nil)
}

// RefreshRejected renews the pair unless the stored access token already
// differs from rejected.
func (m *OAuth2TokenManager) RefreshRejected(ctx context.Context, rejected string) error {
	return m.refresh(ctx, func(current *Token) bool {
		return current != nil && current.AccessToken == rejected
	})
}

// refresh exchanges the stored refresh token under refreshMu. A non-nil stale
// is checked once the lock is held; when it reports false the token was
// replaced while waiting and nothing is sent.
func (m *OAuth2TokenManager) refresh(ctx context.Context, stale func(current *Token) bool) error {
	m.refreshMu.Lock()
	defer m.refreshMu.Unlock()

	current := m.store.Get()
	if stale != nil && !stale(current) {
		return nil
	}

	if current == nil || current.RefreshToken == "" {
		return constants.ErrNoRefreshToken
	}

	if m.config.TokenURL == "" {
		return constants.ErrNoTokenURL
	}

	source := m.oauth.TokenSource(m.context(ctx), &oauth2.Token{RefreshToken: current.RefreshToken})

	fresh, err := source.Token()
	if err != nil {
		return fmt.Errorf("refreshing access token: %w", err)
	}

	return m.storeToken(fresh, current.RefreshToken)
}

// SetToken manually sets a token, keeping the stored refresh token.
func (m *OAuth2TokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Update(func(current Token) Token {
		current.AccessToken = token
		current.ExpiresAt = expiresAt
		current.ExpiresIn = 0

		if current.TokenType == "" {
			current.TokenType = constants.TokenTypeBearer
		}

		return current
	})
}

// SetTokenPair replaces both halves of the pair. Expiry becomes unknown.
func (m *OAuth2TokenManager) SetTokenPair(accessToken, refreshToken string) {
	m.store.Set(&Token{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    constants.TokenTypeBearer,
	})
}

// SetExpiresIn records the provider's expires_in for the current token. A
// value of zero or less clears the expiry, so the token is not treated as expired.
func (m *OAuth2TokenManager) SetExpiresIn(expiresIn int64) {
	now := time.Now()

	m.store.Update(func(current Token) Token {
		current.ExpiresIn = expiresIn
		current.ExpiresAt = expiresAt(now, expiresIn, m.config.RefreshThreshold)

		return current
	})
}

// ExpiresAt returns when the current token should be renewed, if known.
func (m *OAuth2TokenManager) ExpiresAt() (time.Time, bool) {
	token := m.store.Get()
	if token == nil || token.ExpiresAt.IsZero() {
		return time.Time{}, false
	}

	return token.ExpiresAt, true
}

// IsExpired reports whether the current token is known to be expired.
func (m *OAuth2TokenManager) IsExpired() bool {
	return m.store.Get().Expired()
}

// Token returns a copy of the current pair.
func (m *OAuth2TokenManager) Token() (Token, bool) {
	token := m.store.Get()
	if token == nil {
		return Token{}, false
	}

	return *token, true
}

// SetAutoRefresh toggles automatic refresh.
func (m *OAuth2TokenManager) SetAutoRefresh(enabled bool) {
	m.autoRefresh.Store(enabled)
}

// AutoRefresh reports whether automatic refresh is on.
func (m *OAuth2TokenManager) AutoRefresh() bool {
	return m.autoRefresh.Load()
}

// AuthCodeURL returns the consent URL a user visits to authorize the client,
// and the random state embedded in it.
func (m *OAuth2TokenManager) AuthCodeURL(scopes ...string) (string, string) {
	conf := *m.oauth
	if len(scopes) > 0 {
		conf.Scopes = scopes
	}

	state := uuid.NewString()

	return conf.AuthCodeURL(state), state
}

// Exchange trades an authorization code for a token pair and stores it.
func (m *OAuth2TokenManager) Exchange(ctx context.Context, code string) (Token, error) {
	if code == "" {
		return Token{}, constants.ErrNoAuthorizationCode
	}

	m.refreshMu.Lock()
	defer m.refreshMu.Unlock()

	fresh, err := m.oauth.Exchange(m.context(ctx), code)
	if err != nil {
		return Token{}, fmt.Errorf("exchanging authorization code: %w", err)
	}

	err = m.storeToken(fresh, "")
	if err != nil {
		return Token{}, err
	}

	token, _ := m.Token()

	return token, nil
}

func (m *OAuth2TokenManager) storeToken(fresh *oauth2.Token, previousRefresh string) error {
	if fresh.AccessToken == "" {
		return constants.ErrEmptyAccessToken
	}

	token := &Token{
		AccessToken:  fresh.AccessToken,
		TokenType:    fresh.TokenType,
		RefreshToken: fresh.RefreshToken,
		ExpiresIn:    fresh.ExpiresIn,
	}

	if token.RefreshToken == "" {
		token.RefreshToken = previousRefresh
	}

	if token.TokenType == "" {
		token.TokenType = constants.TokenTypeBearer
	}

	if !fresh.Expiry.IsZero() {
		token.ExpiresAt = fresh.Expiry.Add(-m.config.RefreshThreshold)

		if token.ExpiresIn == 0 {
			token.ExpiresIn = int64(time.Until(fresh.Expiry).Round(time.Second) / time.Second)
		}
	}

	m.store.Set(token)

	if m.config.OnRefresh != nil {
		m.config.OnRefresh(*token)
	}

	return nil
}

func (m *OAuth2TokenManager) context(ctx context.Context) context.Context {
	if m.config.HTTPClient == nil {
		return ctx
	}

	return context.WithValue(ctx, oauth2.HTTPClient, m.config.HTTPClient)
}
