// Package steamid converts between the 32-bit account id space used by the
// match provider and the 64-bit steam id space used everywhere else.
package steamid

import (
	"fmt"
	"strconv"
)

// offset separates the two id spaces: steamID64 = accountID + offset.
const offset int64 = 76561197960265728

// UnknownAccountID is the provider's sentinel for players without a linked account.
const UnknownAccountID int64 = 4294967295

// ToSteamID64 converts a 32-bit account id to its 64-bit decimal string form.
// The second return value is false for non-positive ids and the
// unknown-account sentinel; those identify anonymous players, not an error.
func ToSteamID64(accountID int64) (string, bool) {
	if accountID <= 0 || accountID == UnknownAccountID {
		return "", false
	}
	return strconv.FormatInt(accountID+offset, 10), true
}

// ToAccountID converts a 64-bit steam id string back to the 32-bit account id
// space. Callers are responsible for passing an id produced by ToSteamID64.
func ToAccountID(steamID64 string) (int64, error) {
	id, err := strconv.ParseInt(steamID64, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid steam id %q: %w", steamID64, err)
	}
	return id - offset, nil
}
