package user

import (
	"errors"
	"time"
)

// ErrNotFound reports that no user row exists for the given id.
var ErrNotFound = errors.New("user not found")

// Profile is the stored account record for a logged-in user.
type Profile struct {
	ID            int64     `json:"id"`
	SteamID       string    `json:"steam_id"`
	SteamUsername string    `json:"steam_username"`
	AvatarURL     string    `json:"avatar_url"`
	CreatedAt     time.Time `json:"created_at"`
}
