package evaluation

import (
	"database/sql"
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new EvaluationStore.
func New(db *sql.DB) EvaluationStore {
	return &store{
		db: db,
	}
}

// Create validates and inserts a new evaluation, upserting the target player
// row so its last known name stays current.
func (s *store) Create(eval *Evaluation) error {
	if err := eval.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	var playerID int64
	err = tx.QueryRow(`
		INSERT INTO players (steam_id, last_known_name) VALUES (?, ?)
		ON CONFLICT(steam_id) DO UPDATE SET last_known_name = excluded.last_known_name
		RETURNING id;
	`, eval.TargetSteamID, eval.TargetName).Scan(&playerID)
	if err != nil {
		tx.Rollback()
		return err
	}

	tagsJSON, err := json.Marshal(eval.Tags)
	if err != nil {
		tx.Rollback()
		return err
	}

	err = tx.QueryRow(`
		INSERT INTO evaluations (author_id, player_id, rating, notes, match_id, role, hero_id, tags_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id, created_at;
	`, eval.AuthorID, playerID, eval.Rating, eval.Notes, eval.MatchID, eval.Role, eval.HeroID, string(tagsJSON)).
		Scan(&eval.ID, &eval.CreatedAt)
	if err != nil {
		tx.Rollback()
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicate
		}
		return err
	}

	return tx.Commit()
}

// Update rewrites the mutable fields of an evaluation owned by the author.
func (s *store) Update(eval *Evaluation) error {
	if err := validateContent(eval.Rating, eval.Notes, eval.Tags); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tagsJSON, err := json.Marshal(eval.Tags)
	if err != nil {
		return err
	}

	res, err := s.db.Exec(`
		UPDATE evaluations
		SET rating = ?, notes = ?, role = ?, hero_id = ?, tags_json = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND author_id = ?;
	`, eval.Rating, eval.Notes, eval.Role, eval.HeroID, string(tagsJSON), eval.ID, eval.AuthorID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an evaluation owned by the author.
func (s *store) Delete(id, authorID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM evaluations WHERE id = ? AND author_id = ?", id, authorID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByAuthor returns every evaluation the author has written, newest first.
func (s *store) ListByAuthor(authorID int64) ([]Evaluation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT e.id, e.rating, e.notes, e.match_id, e.role, e.hero_id, e.tags_json, e.created_at, e.updated_at,
			p.steam_id, p.last_known_name
		FROM evaluations e
		JOIN players p ON e.player_id = p.id
		WHERE e.author_id = ?
		ORDER BY e.created_at DESC, e.id DESC;
	`, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var evals []Evaluation
	for rows.Next() {
		eval, err := scanEvaluation(rows)
		if err != nil {
			log.Error("Failed to scan evaluation row", "error", err)
			continue
		}
		eval.AuthorID = authorID
		evals = append(evals, *eval)
	}
	return evals, rows.Err()
}

// ListForPlayer returns every evaluation written about a player, newest
// first, with author display data joined in.
func (s *store) ListForPlayer(steamID64 string) ([]Evaluation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT e.id, e.rating, e.notes, e.match_id, e.role, e.hero_id, e.tags_json, e.created_at, e.updated_at,
			p.steam_id, p.last_known_name, e.author_id, u.steam_username
		FROM evaluations e
		JOIN players p ON e.player_id = p.id
		JOIN users u ON e.author_id = u.id
		WHERE p.steam_id = ?
		ORDER BY e.created_at DESC, e.id DESC;
	`, steamID64)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var evals []Evaluation
	for rows.Next() {
		var eval Evaluation
		var notes, role, tagsJSON, targetName, authorName sql.NullString
		var matchID sql.NullInt64
		var heroID sql.NullInt64
		var updatedAt sql.NullTime

		err := rows.Scan(&eval.ID, &eval.Rating, &notes, &matchID, &role, &heroID, &tagsJSON,
			&eval.CreatedAt, &updatedAt, &eval.TargetSteamID, &targetName, &eval.AuthorID, &authorName)
		if err != nil {
			log.Error("Failed to scan evaluation row", "error", err)
			continue
		}
		applyNullableFields(&eval, notes, role, tagsJSON, matchID, heroID, updatedAt)
		eval.TargetName = targetName.String
		eval.AuthorName = authorName.String
		evals = append(evals, eval)
	}
	return evals, rows.Err()
}

// EvaluatedTargets returns the set of steam id64 strings the author has
// already evaluated for one specific match. A single JOIN serves the whole
// participant list; enrichment must never fall back to per-player lookups.
func (s *store) EvaluatedTargets(authorID, matchID int64) (map[string]struct{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT p.steam_id
		FROM evaluations e
		JOIN players p ON e.player_id = p.id
		WHERE e.author_id = ? AND e.match_id = ?;
	`, authorID, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	targets := make(map[string]struct{})
	for rows.Next() {
		var steamID string
		if err := rows.Scan(&steamID); err != nil {
			return nil, err
		}
		targets[steamID] = struct{}{}
	}
	return targets, rows.Err()
}

// DistinctTargets returns the distinct steam ids of every player the author
// has evaluated, for the name refresh path.
func (s *store) DistinctTargets(authorID int64) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT DISTINCT p.steam_id
		FROM players p
		JOIN evaluations e ON p.id = e.player_id
		WHERE e.author_id = ?;
	`, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var steamIDs []string
	for rows.Next() {
		var steamID string
		if err := rows.Scan(&steamID); err != nil {
			return nil, err
		}
		steamIDs = append(steamIDs, steamID)
	}
	return steamIDs, rows.Err()
}

// UniqueTags returns the sorted distinct tags across the author's evaluations.
func (s *store) UniqueTags(authorID int64) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT tags_json FROM evaluations
		WHERE author_id = ? AND tags_json IS NOT NULL;
	`, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	for rows.Next() {
		var tagsJSON string
		if err := rows.Scan(&tagsJSON); err != nil {
			return nil, err
		}
		var tags []string
		if err := json.Unmarshal([]byte(tagsJSON), &tags); err != nil {
			log.Error("Failed to unmarshal tags_json", "error", err)
			continue
		}
		for _, tag := range tags {
			seen[tag] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	unique := make([]string, 0, len(seen))
	for tag := range seen {
		unique = append(unique, tag)
	}
	sort.Strings(unique)
	return unique, nil
}

// UpdateLastKnownNames writes fresh display names keyed by steam id64. It is
// best effort, idempotent and order-independent; the returned count covers
// rows that actually changed.
func (s *store) UpdateLastKnownNames(names map[string]string) (int, error) {
	if len(names) == 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare("UPDATE players SET last_known_name = ? WHERE steam_id = ?")
	if err != nil {
		tx.Rollback()
		return 0, err
	}
	defer stmt.Close()

	updated := 0
	for steamID, name := range names {
		res, err := stmt.Exec(name, steamID)
		if err != nil {
			tx.Rollback()
			return 0, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			tx.Rollback()
			return 0, err
		}
		updated += int(affected)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return updated, nil
}

// scanEvaluation scans the common column set shared by the author listing.
func scanEvaluation(scanner interface{ Scan(...any) error }) (*Evaluation, error) {
	var eval Evaluation
	var notes, role, tagsJSON, targetName sql.NullString
	var matchID, heroID sql.NullInt64
	var updatedAt sql.NullTime

	err := scanner.Scan(&eval.ID, &eval.Rating, &notes, &matchID, &role, &heroID, &tagsJSON,
		&eval.CreatedAt, &updatedAt, &eval.TargetSteamID, &targetName)
	if err != nil {
		return nil, err
	}
	applyNullableFields(&eval, notes, role, tagsJSON, matchID, heroID, updatedAt)
	eval.TargetName = targetName.String
	return &eval, nil
}

func applyNullableFields(eval *Evaluation, notes, role, tagsJSON sql.NullString, matchID, heroID sql.NullInt64, updatedAt sql.NullTime) {
	eval.Notes = notes.String
	eval.Role = role.String
	if matchID.Valid {
		id := matchID.Int64
		eval.MatchID = &id
	}
	eval.HeroID = int(heroID.Int64)
	if updatedAt.Valid {
		ts := updatedAt.Time
		eval.UpdatedAt = &ts
	}
	if tagsJSON.Valid && tagsJSON.String != "" {
		if err := json.Unmarshal([]byte(tagsJSON.String), &eval.Tags); err != nil {
			log.Error("Failed to unmarshal tags_json", "error", err, "evaluationID", eval.ID)
		}
	}
}
