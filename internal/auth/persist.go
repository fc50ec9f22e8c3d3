package auth

import (
	"context"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// refreshMargin renews tokens this long before they expire
const refreshMargin = time.Minute

// PersistingTokenSource refreshes Strava tokens and hands every new token to save
type PersistingTokenSource struct {
	mu     sync.Mutex
	config *oauth2.Config
	token  *oauth2.Token
	save   func(*oauth2.Token) error
}

// NewPersistingTokenSource wraps token; save may be nil
func NewPersistingTokenSource(cfg *oauth2.Config, token *oauth2.Token, save func(*oauth2.Token) error) *PersistingTokenSource {
	return &PersistingTokenSource{config: cfg, token: token, save: save}
}

// Token implements oauth2.TokenSource
func (ts *PersistingTokenSource) Token() (*oauth2.Token, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if time.Until(ts.token.Expiry) > refreshMargin {
		return ts.token, nil
	}

	fresh, err := ts.config.TokenSource(context.Background(), ts.token).Token()
	if err != nil {
		return nil, err
	}
	if ts.save != nil {
		if err := ts.save(fresh); err != nil {
			return nil, err
		}
	}
	ts.token = fresh
	return fresh, nil
}
