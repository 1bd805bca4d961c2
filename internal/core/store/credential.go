package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
	"time"
)

const credentialName = "riot_api_key"

// GetCredential returns the persisted API key, or empty when none is set.
func (s *Store) GetCredential(ctx context.Context) (string, error) {
	if s == nil || s.DB == nil {
		return "", errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	var token string
	row := s.DB.QueryRowContext(ctx, `SELECT token FROM credentials WHERE name = ?`, credentialName)
	if err := row.Scan(&token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}

	return token, nil
}

// SetCredential persists the API key. An empty token clears it.
func (s *Store) SetCredential(ctx context.Context, token string) error {
	if s == nil || s.DB == nil {
		return errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	token = strings.TrimSpace(token)
	if token == "" {
		_, err := s.DB.ExecContext(ctx, `DELETE FROM credentials WHERE name = ?`, credentialName)
		return err
	}

	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO credentials (name, token, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at
	`, credentialName, token, time.Now().UTC().Unix())
	return err
}

// CredentialKeeper adapts the store to the credential interfaces used by
// the transport and selector, caching the token after the first read.
type CredentialKeeper struct {
	Store *Store

	mu     sync.RWMutex
	cached string
	loaded bool
}

// Credential returns the persisted API key, reading through the cache.
func (k *CredentialKeeper) Credential() string {
	k.mu.RLock()
	if k.loaded {
		defer k.mu.RUnlock()
		return k.cached
	}
	k.mu.RUnlock()

	k.mu.Lock()
	defer k.mu.Unlock()
	if k.loaded {
		return k.cached
	}

	token, err := k.Store.GetCredential(context.Background())
	if err != nil {
		return ""
	}
	k.cached = token
	k.loaded = true
	return token
}

// SetCredential persists the token and updates the cache.
func (k *CredentialKeeper) SetCredential(token string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.Store.SetCredential(context.Background(), token); err != nil {
		return err
	}
	k.cached = strings.TrimSpace(token)
	k.loaded = true
	return nil
}
