package auth

import (
	"sync"
	"time"
)

// Token represents an OAuth2 token pair.
type Token struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresIn    int64     `json:"expires_in,omitempty"`
	ExpiresAt    time.Time `json:"-"`
}

// Expired reports whether the token is known to be past its refresh point.
// A token without a known expiry is never expired.
func (t *Token) Expired() bool {
	if t == nil || t.ExpiresAt.IsZero() {
		return false
	}

	return !time.Now().Before(t.ExpiresAt)
}

// Valid reports whether the token carries an access token that is not expired.
func (t *Token) Valid() bool {
	return t != nil && t.AccessToken != "" && !t.Expired()
}

// TokenStore holds the current token behind a read-write lock. Stored tokens
// are replaced, never mutated, so a reader always sees one complete pair.
type TokenStore struct {
	mu    sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the current token, or nil.
func (s *TokenStore) Get() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Set replaces the current token.
func (s *TokenStore) Set(token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// Update replaces the current token with fn applied to a copy of it, under a
// single write lock.
func (s *TokenStore) Update(fn func(token Token) Token) *Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	var current Token
	if s.token != nil {
		current = *s.token
	}

	next := fn(current)
	s.token = &next

	return s.token
}

// Clear removes the current token.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = nil
}

// expiresAt converts a provider's expires_in into the instant the token should
// be renewed. Zero means unknown.
func expiresAt(now time.Time, expiresIn int64, threshold time.Duration) time.Time {
	if expiresIn <= 0 {
		return time.Time{}
	}

	return now.Add(time.Duration(expiresIn)*time.Second - threshold)
}
