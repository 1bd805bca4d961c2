package engine

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/riftlens/riftlens/internal/core"
)

// ErrNoCredential is returned by ForceReal when no API key is configured.
var ErrNoCredential = errors.New("no API key configured; set one before forcing the real client")

// CredentialStore holds the API credential. Implementations persist the
// token (store-backed) or keep it in memory.
type CredentialStore interface {
	Credential() string
	SetCredential(token string) error
}

// MemoryCredential is an in-memory CredentialStore.
type MemoryCredential struct {
	mu    sync.RWMutex
	token string
}

// Credential implements CredentialStore.
func (m *MemoryCredential) Credential() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// SetCredential implements CredentialStore.
func (m *MemoryCredential) SetCredential(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = strings.TrimSpace(token)
	return nil
}

type selectorMode int

const (
	modeAuto selectorMode = iota
	modeSynthetic
	modeReal
)

// Selector chooses between the real and synthetic clients based on
// credential presence, with explicit overrides. It implements
// core.Client itself, delegating every call to whichever client is
// currently active, so callers never branch on mode.
type Selector struct {
	mu          sync.RWMutex
	real        core.Client
	synthetic   core.Client
	credentials CredentialStore
	mode        selectorMode
}

var _ core.Client = (*Selector)(nil)

// NewSelector wires the two clients to a credential store.
func NewSelector(real, synthetic core.Client, credentials CredentialStore) *Selector {
	return &Selector{
		real:        real,
		synthetic:   synthetic,
		credentials: credentials,
	}
}

// Current returns the active client: the real one when a credential is
// present, else the synthetic provider. Explicit overrides win.
func (s *Selector) Current() core.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch s.mode {
	case modeSynthetic:
		return s.synthetic
	case modeReal:
		return s.real
	default:
		if s.hasCredentialLocked() {
			return s.real
		}
		return s.synthetic
	}
}

// SetCredential stores the token and returns selection to automatic
// mode. An empty token leaves the system in synthetic mode.
func (s *Selector) SetCredential(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.credentials.SetCredential(token); err != nil {
		return err
	}
	s.mode = modeAuto
	return nil
}

// HasCredential reports whether a non-empty API key is configured.
func (s *Selector) HasCredential() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasCredentialLocked()
}

// ForceSynthetic pins the synthetic provider regardless of credentials.
func (s *Selector) ForceSynthetic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = modeSynthetic
}

// ForceReal pins the real client. It fails when no credential is set.
func (s *Selector) ForceReal() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasCredentialLocked() {
		return ErrNoCredential
	}
	s.mode = modeReal
	return nil
}

func (s *Selector) hasCredentialLocked() bool {
	return s.credentials != nil && strings.TrimSpace(s.credentials.Credential()) != ""
}

// GetRankedInfo delegates to the active client.
func (s *Selector) GetRankedInfo(ctx context.Context, riotID string, region core.Region) (*core.RankedInfo, error) {
	return s.Current().GetRankedInfo(ctx, riotID, region)
}

// UpdatePlayer delegates to the active client.
func (s *Selector) UpdatePlayer(ctx context.Context, player *core.Player) error {
	return s.Current().UpdatePlayer(ctx, player)
}

// IsInGame delegates to the active client.
func (s *Selector) IsInGame(ctx context.Context, player *core.Player) (bool, error) {
	return s.Current().IsInGame(ctx, player)
}

// Source reports the active client's data source.
func (s *Selector) Source() string {
	return s.Current().Source()
}
