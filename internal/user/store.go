package user

import (
	"database/sql"
	"fmt"
	"sync"
)

type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new UserStore.
func New(db *sql.DB) UserStore {
	return &store{
		db: db,
	}
}

// GetProfile fetches one user profile row by id.
func (s *store) GetProfile(id int64) (*Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p Profile
	var username, avatar sql.NullString
	err := s.db.QueryRow(`
		SELECT id, steam_id, steam_username, avatar_url, created_at
		FROM users WHERE id = ?
	`, id).Scan(&p.ID, &p.SteamID, &username, &avatar, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	p.SteamUsername = username.String
	p.AvatarURL = avatar.String
	return &p, nil
}
