package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peerscout/internal/database"
	"peerscout/internal/user"
)

func TestGetProfile(t *testing.T) {
	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	defer teardown()

	_, err = db.Exec(`INSERT INTO users (id, steam_id, steam_username, avatar_url)
		VALUES (7, '76561198000000007', 'scout', 'https://example.com/avatar.jpg')`)
	require.NoError(t, err)

	store := user.New(db)

	profile, err := store.GetProfile(7)
	require.NoError(t, err)
	assert.Equal(t, "76561198000000007", profile.SteamID)
	assert.Equal(t, "scout", profile.SteamUsername)
	assert.False(t, profile.CreatedAt.IsZero())

	_, err = store.GetProfile(99)
	assert.ErrorIs(t, err, user.ErrNotFound)
}
