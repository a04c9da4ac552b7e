// Package auth supplies the credentials the request pipeline attaches to every
// outgoing request.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fivetwenty-io/saasapi/internal/constants"
)

// Credential decorates an outgoing request with authentication.
type Credential interface {
	Apply(ctx context.Context, req *http.Request) error
}

// Refresher is implemented by credentials that can renew themselves after the
// server rejects them with 401.
type Refresher interface {
	RefreshOnUnauthorized() bool
	Refresh(ctx context.Context, rejected *http.Request) error
}

// TokenManager interface for managing authentication tokens.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) error
	SetToken(token string, expiresAt time.Time)
}

// autoRefresher is implemented by token managers that may refresh on 401.
type autoRefresher interface {
	AutoRefresh() bool
}

// rejectedRefresher is implemented by token managers that skip a refresh when
// the rejected token was already replaced.
type rejectedRefresher interface {
	RefreshRejected(ctx context.Context, rejected string) error
}

// BearerCredential sends the token manager's current token as
// "Authorization: Bearer <token>".
type BearerCredential struct {
	tokens TokenManager
}

// Bearer wraps a token manager as a bearer credential.
func Bearer(tokens TokenManager) *BearerCredential {
	return &BearerCredential{tokens: tokens}
}

// Apply sets the Authorization header.
func (b *BearerCredential) Apply(ctx context.Context, req *http.Request) error {
	token, err := b.tokens.GetToken(ctx)
	if err != nil {
		return fmt.Errorf("getting access token: %w", err)
	}

	if token != "" {
		req.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
	}

	return nil
}

// RefreshOnUnauthorized reports whether the underlying manager has automatic
// refresh turned on.
func (b *BearerCredential) RefreshOnUnauthorized() bool {
	ar, ok := b.tokens.(autoRefresher)

	return ok && ar.AutoRefresh()
}

// Refresh renews the underlying token. When rejected carries a bearer token
// and the manager supports it, concurrent refreshes for the same rejected
// token collapse into one.
func (b *BearerCredential) Refresh(ctx context.Context, rejected *http.Request) error {
	rr, ok := b.tokens.(rejectedRefresher)
	if ok && rejected != nil {
		token, found := strings.CutPrefix(rejected.Header.Get(constants.HeaderAuthorization), "Bearer ")
		if found {
			return rr.RefreshRejected(ctx, token)
		}
	}

	return b.tokens.RefreshToken(ctx)
}

// Tokens returns the wrapped token manager.
func (b *BearerCredential) Tokens() TokenManager {
	return b.tokens
}

// StaticTokenManager provides a fixed token.
type StaticTokenManager struct {
	mu    sync.RWMutex
	token string
}

// NewStaticTokenManager creates a manager that always returns token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

func (m *StaticTokenManager) GetToken(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.token, nil
}

func (m *StaticTokenManager) RefreshToken(context.Context) error {
	return constants.ErrStaticTokenCannotRefresh
}

func (m *StaticTokenManager) SetToken(token string, _ time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
}

// BasicAuth sends a username and password pair.
type BasicAuth struct {
	Username string
	Password string
}

// Apply sets the basic auth header.
func (b BasicAuth) Apply(_ context.Context, req *http.Request) error {
	req.SetBasicAuth(b.Username, b.Password)

	return nil
}
