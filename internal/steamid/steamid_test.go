package steamid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSteamID64(t *testing.T) {
	tests := []struct {
		name      string
		accountID int64
		want      string
		wantOK    bool
	}{
		{"valid id", 113993501, "76561198074259229", true},
		{"smallest valid id", 1, "76561197960265729", true},
		{"zero is anonymous", 0, "", false},
		{"negative is anonymous", -5, "", false},
		{"unknown account sentinel", UnknownAccountID, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToSteamID64(tt.accountID)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToAccountID(t *testing.T) {
	got, err := ToAccountID("76561198074259229")
	require.NoError(t, err)
	assert.Equal(t, int64(113993501), got)

	_, err = ToAccountID("not-a-number")
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	for _, accountID := range []int64{1, 42, 113993501, 4294967294} {
		id64, ok := ToSteamID64(accountID)
		require.True(t, ok, "accountID %d should convert", accountID)

		back, err := ToAccountID(id64)
		require.NoError(t, err)
		assert.Equal(t, accountID, back)
	}
}
