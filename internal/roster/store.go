package roster

import (
	"database/sql"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/okrbeck/clubtable/internal/season"
)

// store resolves rosters from the rosters table.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewStore creates a database-backed roster Provider.
func NewStore(db *sql.DB) Provider {
	return &store{
		db: db,
	}
}

// TeamRoster returns the player ids on a team's roster for a season. Season
// values are stored in whatever encoding the entry form used, so rows are
// matched through the season codec rather than by raw string. A season scope
// of "all" returns the union across seasons.
func (s *store) TeamRoster(teamID, seasonScope string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT season, player_id FROM rosters WHERE team_id = ?", teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	var playerIDs []string
	for rows.Next() {
		var storedSeason, playerID string
		if err := rows.Scan(&storedSeason, &playerID); err != nil {
			log.Error("Failed to scan roster row", "error", err, "teamID", teamID)
			continue
		}
		if seasonScope != "all" && !season.Equals(storedSeason, seasonScope) {
			continue
		}
		if _, ok := seen[playerID]; ok {
			continue
		}
		seen[playerID] = struct{}{}
		playerIDs = append(playerIDs, playerID)
	}
	return playerIDs, rows.Err()
}

// AddMembers records roster membership for a team and season.
func AddMembers(db *sql.DB, teamID, seasonKey string, playerIDs []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	for _, playerID := range playerIDs {
		_, err := tx.Exec(`
			INSERT INTO rosters (team_id, season, player_id) VALUES (?, ?, ?)
			ON CONFLICT(team_id, season, player_id) DO NOTHING;
		`, teamID, seasonKey, playerID)
		if err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
