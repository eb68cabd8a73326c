package steam

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPlayerSummaries(t *testing.T) {
	mockJSONResponse := `{
		"response": {
			"players": [
				{ "steamid": "76561198074259229", "personaname": "Player A", "avatarfull": "https://example.com/a.jpg" },
				{ "steamid": "76561198074259230", "personaname": "Player B", "avatarfull": "https://example.com/b.jpg" }
			]
		}
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ISteamUser/GetPlayerSummaries/v2/", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "76561198074259229,76561198074259230", r.URL.Query().Get("steamids"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, mockJSONResponse)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	summaries := client.GetPlayerSummaries([]string{"76561198074259229", "76561198074259230"})

	assert.Len(t, summaries, 2)
	assert.Equal(t, "Player A", summaries[0].PersonaName)
	assert.Equal(t, "76561198074259230", summaries[1].SteamID)
	assert.Equal(t, "https://example.com/a.jpg", summaries[0].Avatar)
}

func TestGetPlayerSummaries_EmptyInputSkipsNetwork(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	summaries := client.GetPlayerSummaries(nil)

	assert.Empty(t, summaries)
	assert.Equal(t, int64(0), calls.Load(), "no request should be made for empty input")
}

func TestGetPlayerSummaries_DegradesToEmptyOnFailure(t *testing.T) {
	t.Run("provider error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "internal error", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL)
		assert.Empty(t, client.GetPlayerSummaries([]string{"76561198074259229"}))
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintln(w, "not json")
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL)
		assert.Empty(t, client.GetPlayerSummaries([]string{"76561198074259229"}))
	})

	t.Run("transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // connection refused

		client := NewClient("test-key", server.URL)
		assert.Empty(t, client.GetPlayerSummaries([]string{"76561198074259229"}))
	})
}
