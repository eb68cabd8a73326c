package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// APIClient is a Steam Web API client implementing the SteamClient interface.
type APIClient struct {
	httpClient *http.Client
	apiKey     string
	BaseURL    string
}

// NewClient creates a new Steam Web API client. Summary payloads are small,
// so the timeout budget is short.
func NewClient(apiKey, baseURL string) *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		apiKey:     apiKey,
		BaseURL:    baseURL,
	}
}

// Ensure APIClient implements the SteamClient interface.
var _ SteamClient = (*APIClient)(nil)

// GetPlayerSummaries fetches profile snapshots for up to MaxBatchSize steam
// ids. Name and avatar data is best-effort enrichment: any transport or
// provider failure is logged and an empty slice returned. An empty input
// returns immediately without touching the network.
func (c *APIClient) GetPlayerSummaries(steamIDs []string) []PlayerSummary {
	if len(steamIDs) == 0 {
		return []PlayerSummary{}
	}

	url := fmt.Sprintf("%s/ISteamUser/GetPlayerSummaries/v2/?key=%s&steamids=%s",
		c.BaseURL, c.apiKey, strings.Join(steamIDs, ","))

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		log.Error("Failed to create player summaries request", "error", err)
		return []PlayerSummary{}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("Failed to fetch player summaries", "error", err, "count", len(steamIDs))
		return []PlayerSummary{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error("Received non-OK HTTP status from Steam API", "status", resp.StatusCode)
		return []PlayerSummary{}
	}

	var decoded summariesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.Error("Failed to decode player summaries response", "error", err)
		return []PlayerSummary{}
	}

	summaries := make([]PlayerSummary, 0, len(decoded.Response.Players))
	for _, p := range decoded.Response.Players {
		summaries = append(summaries, PlayerSummary{
			SteamID:     p.SteamID,
			PersonaName: p.PersonaName,
			Avatar:      p.AvatarFull,
		})
	}
	log.Debug("Fetched player summaries", "requested", len(steamIDs), "returned", len(summaries))
	return summaries
}
