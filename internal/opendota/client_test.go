package opendota

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMatchHistory(t *testing.T) {
	mockJSONResponse := `[
		{ "match_id": 8000000001, "player_slot": 1, "radiant_win": true, "duration": 2400, "start_time": 1700000000, "hero_id": 14 },
		{ "match_id": 8000000000, "player_slot": 130, "radiant_win": false, "duration": 1800, "start_time": 1699990000, "hero_id": 5 }
	]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 76561198074259229 - 76561197960265728 = 113993501
		assert.Equal(t, "/players/113993501/matches", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, mockJSONResponse)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	matches := client.GetMatchHistory("76561198074259229", 20)

	require.Len(t, matches, 2)
	assert.Equal(t, int64(8000000001), matches[0].MatchID)
	assert.Equal(t, 14, matches[0].HeroID)
	assert.False(t, matches[1].RadiantWin)
}

func TestGetMatchHistory_DegradesToEmpty(t *testing.T) {
	t.Run("provider error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := NewClient(server.URL)
		assert.Empty(t, client.GetMatchHistory("76561198074259229", 20))
	})

	t.Run("invalid steam id", func(t *testing.T) {
		client := NewClient("http://localhost:0")
		assert.Empty(t, client.GetMatchHistory("garbage", 20))
	})
}

func TestGetMatchDetails(t *testing.T) {
	mockJSONResponse := `{
		"match_id": 8000000001,
		"radiant_win": true,
		"duration": 2400,
		"start_time": 1700000000,
		"radiant_score": 40,
		"dire_score": 22,
		"players": [
			{
				"account_id": 113993501,
				"personaname": "Player A",
				"hero_id": 14,
				"isRadiant": true,
				"win": 1,
				"lose": 0,
				"kills": 10,
				"deaths": 2,
				"assists": 15,
				"net_worth": 24000,
				"player_slot": 0,
				"item_0": 1, "item_1": 2, "item_2": 3, "item_3": 4, "item_4": 5, "item_5": 6,
				"backpack_0": 7, "backpack_1": 8, "backpack_2": 9
			},
			{
				"account_id": 4294967295,
				"hero_id": 5,
				"isRadiant": false,
				"win": 0,
				"lose": 1,
				"player_slot": 128
			}
		]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/matches/8000000001", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, mockJSONResponse)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	details, err := client.GetMatchDetails(8000000001)

	require.NoError(t, err)
	assert.Equal(t, int64(8000000001), details.MatchID)
	assert.Equal(t, 40, details.RadiantScore)
	require.Len(t, details.Players, 2)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, details.Players[0].Items)
	assert.Equal(t, []int{7, 8, 9}, details.Players[0].Backpack)
	assert.Equal(t, int64(4294967295), details.Players[1].AccountID)
}

func TestGetMatchDetails_FailsLoudly(t *testing.T) {
	t.Run("transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // connection refused

		client := NewClient(server.URL)
		_, err := client.GetMatchDetails(8000000001)
		assert.ErrorIs(t, err, ErrMatchUnavailable)
	})

	t.Run("provider error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.GetMatchDetails(8000000001)
		assert.ErrorIs(t, err, ErrMatchUnavailable)
	})

	t.Run("missing participant list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintln(w, `{ "match_id": 8000000001, "duration": 2400 }`)
		}))
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.GetMatchDetails(8000000001)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMatchUnavailable))
	})
}
