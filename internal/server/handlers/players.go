package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/riftlens/riftlens/internal/core"
	apperrors "github.com/riftlens/riftlens/internal/errors"
	"github.com/riftlens/riftlens/internal/metrics"
)

// LookupService resolves ranked data. Backed by the client selector, so
// the handler never knows whether data is real or synthetic.
type LookupService interface {
	GetRankedInfo(ctx context.Context, riotID string, region core.Region) (*core.RankedInfo, error)
	IsInGame(ctx context.Context, player *core.Player) (bool, error)
	Source() string
}

// RosterStore lists tracked players.
type RosterStore interface {
	ListPlayers(ctx context.Context) ([]*core.Player, error)
	GetPlayer(ctx context.Context, riotID string) (*core.Player, error)
}

var (
	lookupService LookupService
	rosterStore   RosterStore
)

// SetLookupService injects the active lookup client.
func SetLookupService(svc LookupService) {
	lookupService = svc
}

// SetRosterStore injects the roster store.
func SetRosterStore(store RosterStore) {
	rosterStore = store
}

// PlayersResponse wraps the roster listing.
type PlayersResponse struct {
	Players []*core.Player `json:"players"`
	Source  string         `json:"source"`
}

// LiveResponse reports live-game status for one player.
type LiveResponse struct {
	RiotID    string    `json:"riotId"`
	InGame    bool      `json:"inGame"`
	CheckedAt time.Time `json:"checkedAt"`
}

// PlayersHandler returns the tracked roster with its latest snapshots.
func PlayersHandler(w http.ResponseWriter, r *http.Request) {
	if rosterStore == nil {
		respondWithError(w, r, apperrors.NewInternalError("roster store not configured"))
		return
	}

	players, err := rosterStore.ListPlayers(r.Context())
	if err != nil {
		respondWithError(w, r, apperrors.WrapDatabaseError(r.Context(), err, "failed to list roster"))
		return
	}

	source := ""
	if lookupService != nil {
		source = lookupService.Source()
	}

	writeJSON(w, http.StatusOK, PlayersResponse{Players: players, Source: source})
}

// PlayerRankedHandler performs a live ranked lookup for the identity in
// the path. The region comes from the roster entry when tracked, or the
// "region" query parameter otherwise.
func PlayerRankedHandler(w http.ResponseWriter, r *http.Request) {
	if lookupService == nil {
		respondWithError(w, r, apperrors.NewInternalError("lookup service not configured"))
		return
	}

	riotID, err := pathRiotID(r)
	if err != nil {
		respondWithError(w, r, apperrors.WrapInvalidInput(r.Context(), err, "invalid riot id in path"))
		return
	}

	region, err := requestRegion(r, riotID)
	if err != nil {
		respondWithError(w, r, apperrors.WrapInvalidInput(r.Context(), err, "invalid region"))
		return
	}

	start := time.Now()
	info, err := lookupService.GetRankedInfo(r.Context(), riotID, region)
	metrics.RecordLookup(lookupService.Source(), err == nil, time.Since(start))
	if err != nil {
		respondWithError(w, r, apperrors.WrapLookupError(r.Context(), err))
		return
	}

	writeJSON(w, http.StatusOK, info)
}

// PlayerLiveHandler reports whether the player is currently in a game.
func PlayerLiveHandler(w http.ResponseWriter, r *http.Request) {
	if lookupService == nil {
		respondWithError(w, r, apperrors.NewInternalError("lookup service not configured"))
		return
	}

	riotID, err := pathRiotID(r)
	if err != nil {
		respondWithError(w, r, apperrors.WrapInvalidInput(r.Context(), err, "invalid riot id in path"))
		return
	}

	region, err := requestRegion(r, riotID)
	if err != nil {
		respondWithError(w, r, apperrors.WrapInvalidInput(r.Context(), err, "invalid region"))
		return
	}

	player := &core.Player{RiotID: riotID, Region: region}
	if rosterStore != nil {
		if tracked, err := rosterStore.GetPlayer(r.Context(), riotID); err == nil {
			player = tracked
		}
	}

	inGame, err := lookupService.IsInGame(r.Context(), player)
	if err != nil {
		respondWithError(w, r, apperrors.WrapLookupError(r.Context(), err))
		return
	}

	writeJSON(w, http.StatusOK, LiveResponse{
		RiotID:    riotID,
		InGame:    inGame,
		CheckedAt: time.Now().UTC(),
	})
}

func pathRiotID(r *http.Request) (string, error) {
	raw := chi.URLParam(r, "riotID")
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", err
	}
	return decoded, nil
}

// requestRegion prefers the tracked roster region, falling back to the
// query parameter, then na1.
func requestRegion(r *http.Request, riotID string) (core.Region, error) {
	if rosterStore != nil {
		if player, err := rosterStore.GetPlayer(r.Context(), riotID); err == nil && player.Region != "" {
			return player.Region, nil
		}
	}

	if raw := r.URL.Query().Get("region"); raw != "" {
		return core.ParseRegion(raw)
	}
	return core.RegionNA1, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
