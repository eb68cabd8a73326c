package opendota

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"peerscout/internal/steamid"
)

// ErrMatchUnavailable reports that the provider could not supply a usable
// record for a match. Callers must handle it explicitly; a missing match
// cannot be silently treated as empty without corrupting aggregate
// statistics.
var ErrMatchUnavailable = errors.New("match unavailable")

// historyTimeout bounds the match listing call. Match detail payloads are
// much larger, so detail fetches get the full client timeout instead.
const historyTimeout = 5 * time.Second

// APIClient is an OpenDota API client implementing the OpenDotaClient interface.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
}

// NewClient creates a new OpenDota client.
func NewClient(baseURL string) *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    baseURL,
	}
}

// Ensure APIClient implements the OpenDotaClient interface.
var _ OpenDotaClient = (*APIClient)(nil)

// GetMatchHistory fetches a player's recent matches, at most limit entries,
// in provider order. Failures are logged and degrade to an empty slice.
func (c *APIClient) GetMatchHistory(steamID64 string, limit int) []MatchSummary {
	accountID, err := steamid.ToAccountID(steamID64)
	if err != nil {
		log.Error("Cannot derive account id for match history", "steamID", steamID64, "error", err)
		return []MatchSummary{}
	}

	url := fmt.Sprintf("%s/players/%d/matches?limit=%d", c.BaseURL, accountID, limit)

	ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error("Failed to create match history request", "error", err)
		return []MatchSummary{}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("Failed to fetch match history", "error", err, "accountID", accountID)
		return []MatchSummary{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error("Received non-OK HTTP status from OpenDota API", "status", resp.StatusCode, "accountID", accountID)
		return []MatchSummary{}
	}

	var decoded []matchSummaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.Error("Failed to decode match history response", "error", err)
		return []MatchSummary{}
	}

	matches := make([]MatchSummary, 0, len(decoded))
	for _, m := range decoded {
		matches = append(matches, MatchSummary{
			MatchID:    m.MatchID,
			PlayerSlot: m.PlayerSlot,
			RadiantWin: m.RadiantWin,
			Duration:   m.Duration,
			StartTime:  m.StartTime,
			HeroID:     m.HeroID,
		})
	}
	log.Debug("Fetched match history", "accountID", accountID, "count", len(matches))
	return matches
}

// GetMatchDetails fetches the full record for one match. Unlike history
// lookups this fails loudly: any transport error, bad status, or a response
// without a participant list yields ErrMatchUnavailable.
func (c *APIClient) GetMatchDetails(matchID int64) (*MatchDetails, error) {
	url := fmt.Sprintf("%s/matches/%d", c.BaseURL, matchID)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for match %d: %w", matchID, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("Failed to fetch match details", "error", err, "matchID", matchID)
		return nil, fmt.Errorf("match %d: %w", matchID, ErrMatchUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error("Received non-OK HTTP status from OpenDota API", "status", resp.StatusCode, "matchID", matchID)
		return nil, fmt.Errorf("match %d: %w", matchID, ErrMatchUnavailable)
	}

	var decoded matchDetailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.Error("Failed to decode match details response", "error", err, "matchID", matchID)
		return nil, fmt.Errorf("match %d: %w", matchID, ErrMatchUnavailable)
	}

	if decoded.Players == nil {
		log.Error("OpenDota response is missing a participant list", "matchID", matchID)
		return nil, fmt.Errorf("match %d has no participant data: %w", matchID, ErrMatchUnavailable)
	}

	details := &MatchDetails{
		MatchID:      decoded.MatchID,
		RadiantWin:   decoded.RadiantWin,
		Duration:     decoded.Duration,
		StartTime:    decoded.StartTime,
		RadiantScore: decoded.RadiantScore,
		DireScore:    decoded.DireScore,
		Players:      make([]MatchPlayer, 0, len(decoded.Players)),
	}
	for _, p := range decoded.Players {
		details.Players = append(details.Players, MatchPlayer{
			AccountID:   p.AccountID,
			PersonaName: p.PersonaName,
			Avatar:      p.AvatarFull,
			HeroID:      p.HeroID,
			IsRadiant:   p.IsRadiant,
			Win:         p.Win,
			Lose:        p.Lose,
			Kills:       p.Kills,
			Deaths:      p.Deaths,
			Assists:     p.Assists,
			NetWorth:    p.NetWorth,
			PlayerSlot:  p.PlayerSlot,
			Items:       []int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5},
			Backpack:    []int{p.Backpack0, p.Backpack1, p.Backpack2},
		})
	}
	log.Debug("Fetched match details", "matchID", matchID, "players", len(details.Players))
	return details, nil
}
