package cmd

import (
	"context"
	"net/http"

	"github.com/riftlens/riftlens/internal/config"
	"github.com/riftlens/riftlens/internal/core/engine"
	"github.com/riftlens/riftlens/internal/core/riot"
	"github.com/riftlens/riftlens/internal/core/store"
	"github.com/riftlens/riftlens/internal/core/synthetic"
)

// newSelector wires the full client stack: stored credential, rate-limited
// Riot pipeline, and the synthetic fallback provider.
func newSelector(ctx context.Context, db *store.Store) (*engine.Selector, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}

	// A key from config or environment takes precedence over the stored
	// one without overwriting it.
	var credentials engine.CredentialStore = &store.CredentialKeeper{Store: db}
	if cfg.Riot.APIKey != "" {
		mem := &engine.MemoryCredential{}
		if err := mem.SetCredential(cfg.Riot.APIKey); err != nil {
			return nil, err
		}
		credentials = mem
	}

	transport := &riot.Transport{
		Client:      &http.Client{Timeout: cfg.Riot.Timeout},
		Credentials: credentials,
	}
	scheduler := engine.NewScheduler(transport, engine.SchedulerConfig{
		PerSecondLimit:    cfg.Riot.PerSecondLimit,
		PerMinuteLimit:    cfg.Riot.PerMinuteLimit,
		InterRequestDelay: cfg.Riot.InterRequestDelay,
	})
	orchestrator := &engine.Orchestrator{Scheduler: scheduler}

	return engine.NewSelector(orchestrator, synthetic.NewProvider(), credentials), nil
}
