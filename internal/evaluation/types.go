package evaluation

import (
	"errors"
	"fmt"
	"time"
)

// Limits enforced on user-authored evaluations.
const (
	MaxNotesLength = 200
	MaxTags        = 5
	MaxTagLength   = 25
)

// ErrDuplicate reports that an evaluation for this player in this match
// already exists for the author.
var ErrDuplicate = errors.New("evaluation already exists for this player and match")

// ErrNotFound reports that no evaluation matched the given id and author.
var ErrNotFound = errors.New("evaluation not found")

// ErrInvalid wraps every validation failure so callers can map it to a 400.
var ErrInvalid = errors.New("invalid evaluation")

// Evaluation is a user-authored rating of a peer for a specific match.
// TargetName and AuthorName are denormalized join results, populated
// depending on which listing produced the row.
type Evaluation struct {
	ID            int64      `json:"id"`
	AuthorID      int64      `json:"author_id"`
	AuthorName    string     `json:"author_name,omitempty"`
	TargetSteamID string     `json:"target_steam_id"`
	TargetName    string     `json:"target_name,omitempty"`
	Rating        int        `json:"rating"`
	Notes         string     `json:"notes,omitempty"`
	MatchID       *int64     `json:"match_id,omitempty"`
	Role          string     `json:"role,omitempty"`
	HeroID        int        `json:"hero_id,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// Validate enforces the evaluation field limits.
func (e *Evaluation) Validate() error {
	if e.TargetSteamID == "" {
		return fmt.Errorf("%w: target steam id is required", ErrInvalid)
	}
	return validateContent(e.Rating, e.Notes, e.Tags)
}

func validateContent(rating int, notes string, tags []string) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalid)
	}
	if len(notes) > MaxNotesLength {
		return fmt.Errorf("%w: notes cannot exceed %d characters", ErrInvalid, MaxNotesLength)
	}
	if len(tags) > MaxTags {
		return fmt.Errorf("%w: at most %d tags are allowed", ErrInvalid, MaxTags)
	}
	for _, tag := range tags {
		if len(tag) > MaxTagLength {
			return fmt.Errorf("%w: each tag cannot exceed %d characters", ErrInvalid, MaxTagLength)
		}
	}
	return nil
}
