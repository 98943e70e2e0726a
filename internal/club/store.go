package club

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
)

// New creates a new ClubStore.
func New(db *sql.DB) ClubStore {
	return &store{
		db: db,
	}
}

func (s *store) UpsertTeams(teams []Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	for _, team := range teams {
		_, err := tx.Exec(`
			INSERT INTO teams (id, name) VALUES (?, ?)
			ON CONFLICT(id) DO UPDATE SET name = excluded.name;
		`, team.ID, team.Name)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := s.bumpVersionTx(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *store) GetTeams(teamIDs []string) ([]Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(teamIDs) == 0 {
		return []Team{}, nil
	}

	query := "SELECT id, name FROM teams WHERE id IN (?" + repeatPlaceholder(len(teamIDs)-1) + ")"
	rows, err := s.db.Query(query, ToAnySlice(teamIDs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTeams(rows)
}

func (s *store) GetAllTeams() ([]Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name FROM teams ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTeams(rows)
}

func scanTeams(rows *sql.Rows) ([]Team, error) {
	var teams []Team
	for rows.Next() {
		var t Team
		var name sql.NullString
		if err := rows.Scan(&t.ID, &name); err != nil {
			log.Error("Failed to scan team row", "error", err)
			continue
		}
		t.Name = name.String
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (s *store) UpsertCompetition(comp *Competition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	teamIDsJSON, err := json.Marshal(comp.TeamIDs)
	if err != nil {
		tx.Rollback()
		return err
	}
	rankLabelsJSON, err := json.Marshal(comp.RankLabels)
	if err != nil {
		tx.Rollback()
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO competitions (id, name, season, format, team_ids_json, rank_labels_json)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			season = excluded.season,
			format = excluded.format,
			team_ids_json = excluded.team_ids_json,
			rank_labels_json = excluded.rank_labels_json;
	`, comp.ID, comp.Name, comp.Season, string(comp.Format), teamIDsJSON, rankLabelsJSON)
	if err != nil {
		tx.Rollback()
		return err
	}

	for _, round := range comp.Rounds {
		_, err := tx.Exec(`
			INSERT INTO rounds (id, competition_id, name) VALUES (?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET competition_id = excluded.competition_id, name = excluded.name;
		`, round.ID, comp.ID, round.Name)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := s.bumpVersionTx(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *store) GetCompetition(competitionID string) (*Competition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, name, season, format, team_ids_json, rank_labels_json
		FROM competitions WHERE id = ?
	`, competitionID)

	comp, err := s.scanCompetition(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("competition '%s' not found", competitionID)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.attachRounds(comp); err != nil {
		return nil, err
	}
	return comp, nil
}

func (s *store) GetCompetitions() ([]Competition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, name, season, format, team_ids_json, rank_labels_json
		FROM competitions ORDER BY season DESC, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comps []Competition
	for rows.Next() {
		comp, err := s.scanCompetition(rows)
		if err != nil {
			log.Error("Failed to scan competition row", "error", err)
			continue
		}
		if err := s.attachRounds(comp); err != nil {
			log.Error("Failed to load rounds for competition", "error", err, "competitionID", comp.ID)
		}
		comps = append(comps, *comp)
	}
	return comps, rows.Err()
}

func (s *store) scanCompetition(scanner interface{ Scan(...any) error }) (*Competition, error) {
	var comp Competition
	var format string
	var teamIDsJSON, rankLabelsJSON sql.NullString

	err := scanner.Scan(&comp.ID, &comp.Name, &comp.Season, &format, &teamIDsJSON, &rankLabelsJSON)
	if err != nil {
		return nil, err
	}
	comp.Format = CompetitionFormat(format)

	if teamIDsJSON.Valid && teamIDsJSON.String != "" {
		if err := json.Unmarshal([]byte(teamIDsJSON.String), &comp.TeamIDs); err != nil {
			log.Error("Failed to unmarshal team_ids_json", "error", err, "competitionID", comp.ID)
		}
	}
	if rankLabelsJSON.Valid && rankLabelsJSON.String != "" {
		if err := json.Unmarshal([]byte(rankLabelsJSON.String), &comp.RankLabels); err != nil {
			log.Error("Failed to unmarshal rank_labels_json", "error", err, "competitionID", comp.ID)
		}
	}
	return &comp, nil
}

func (s *store) attachRounds(comp *Competition) error {
	rows, err := s.db.Query("SELECT id, competition_id, name FROM rounds WHERE competition_id = ?", comp.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var r Round
		if err := rows.Scan(&r.ID, &r.CompetitionID, &r.Name); err != nil {
			log.Error("Failed to scan round row", "error", err)
			continue
		}
		comp.Rounds = append(comp.Rounds, r)
	}
	return rows.Err()
}

// UpsertMatch writes the authoritative match row and refreshes the
// denormalized match_index rows for both teams in the same transaction, so
// the fast path can never lag behind this write.
func (s *store) UpsertMatch(match *Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if match.ID == "" || match.CompetitionID == "" || match.RoundID == "" {
		return fmt.Errorf("match is missing identity fields (id=%q, competition=%q, round=%q)", match.ID, match.CompetitionID, match.RoundID)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	playerLinesJSON, err := json.Marshal(match.PlayerLines)
	if err != nil {
		tx.Rollback()
		return err
	}
	teamLinesJSON, err := json.Marshal(match.TeamLines)
	if err != nil {
		tx.Rollback()
		return err
	}
	eventsJSON, err := json.Marshal(match.Events)
	if err != nil {
		tx.Rollback()
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO matches (id, competition_id, round_id, home_team_id, away_team_id, home_score, away_score, match_date, match_time, venue, friendly, player_lines_json, team_lines_json, events_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(competition_id, round_id, id) DO UPDATE SET
			home_team_id = excluded.home_team_id,
			away_team_id = excluded.away_team_id,
			home_score = excluded.home_score,
			away_score = excluded.away_score,
			match_date = excluded.match_date,
			match_time = excluded.match_time,
			venue = excluded.venue,
			friendly = excluded.friendly,
			player_lines_json = excluded.player_lines_json,
			team_lines_json = excluded.team_lines_json,
			events_json = excluded.events_json;
	`, match.ID, match.CompetitionID, match.RoundID, match.HomeTeamID, match.AwayTeamID,
		nullableInt(match.HomeScore), nullableInt(match.AwayScore),
		match.Date, match.Time, match.Venue, match.Friendly,
		playerLinesJSON, teamLinesJSON, eventsJSON)
	if err != nil {
		tx.Rollback()
		return err
	}

	_, err = tx.Exec("DELETE FROM match_index WHERE match_id = ?", match.ID)
	if err != nil {
		tx.Rollback()
		return err
	}
	for _, teamID := range []string{match.HomeTeamID, match.AwayTeamID} {
		if teamID == "" {
			continue
		}
		_, err = tx.Exec(`
			INSERT INTO match_index (team_id, match_id, competition_id, round_id, home_team_id, away_team_id, home_score, away_score, match_date, match_time, venue, friendly)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, teamID, match.ID, match.CompetitionID, match.RoundID, match.HomeTeamID, match.AwayTeamID,
			nullableInt(match.HomeScore), nullableInt(match.AwayScore),
			match.Date, match.Time, match.Venue, match.Friendly)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := s.bumpVersionTx(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

const matchColumns = "id, competition_id, round_id, home_team_id, away_team_id, home_score, away_score, match_date, match_time, venue, friendly, player_lines_json, team_lines_json, events_json"

func (s *store) GetMatchesForCompetitions(competitionIDs []string) ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(competitionIDs) == 0 {
		return []Match{}, nil
	}

	query := "SELECT " + matchColumns + " FROM matches WHERE competition_id IN (?" + repeatPlaceholder(len(competitionIDs)-1) + ") ORDER BY match_date"
	rows, err := s.db.Query(query, ToAnySlice(competitionIDs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return s.scanMatches(rows)
}

// GetAllMatches walks the authoritative match tree.
func (s *store) GetAllMatches() ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT " + matchColumns + " FROM matches ORDER BY match_date")
	if err != nil {
		log.Error("Failed to query all matches", "error", err)
		return nil, err
	}
	defer rows.Close()

	return s.scanMatches(rows)
}

// GetMatchesByTeam is the slow, authoritative read path for one team's
// matches: a full scan of the match tree.
func (s *store) GetMatchesByTeam(teamID string) ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT "+matchColumns+" FROM matches WHERE home_team_id = ? OR away_team_id = ? ORDER BY match_date",
		teamID, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return s.scanMatches(rows)
}

// GetIndexMatchesByTeam reads the denormalized fast path. Index rows carry no
// stat lines or events and may be stale; callers reconcile them against the
// tree scan before presenting.
func (s *store) GetIndexMatchesByTeam(teamID string) ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT match_id, competition_id, round_id, home_team_id, away_team_id, home_score, away_score, match_date, match_time, venue, friendly
		FROM match_index WHERE team_id = ? ORDER BY match_date
	`, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		var homeScore, awayScore sql.NullInt64
		var matchTime, venue sql.NullString
		err := rows.Scan(&m.ID, &m.CompetitionID, &m.RoundID, &m.HomeTeamID, &m.AwayTeamID,
			&homeScore, &awayScore, &m.Date, &matchTime, &venue, &m.Friendly)
		if err != nil {
			log.Error("Failed to scan match index row", "error", err, "teamID", teamID)
			continue
		}
		m.HomeScore = intPtr(homeScore)
		m.AwayScore = intPtr(awayScore)
		m.Time = matchTime.String
		m.Venue = venue.String
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (s *store) scanMatches(rows *sql.Rows) ([]Match, error) {
	var matches []Match
	for rows.Next() {
		match, err := s.scanMatch(rows)
		if err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}
		matches = append(matches, *match)
	}
	return matches, rows.Err()
}

func (s *store) scanMatch(scanner interface{ Scan(...any) error }) (*Match, error) {
	var match Match
	var homeScore, awayScore sql.NullInt64
	var matchTime, venue, playerLinesJSON, teamLinesJSON, eventsJSON sql.NullString

	err := scanner.Scan(
		&match.ID, &match.CompetitionID, &match.RoundID, &match.HomeTeamID, &match.AwayTeamID,
		&homeScore, &awayScore, &match.Date, &matchTime, &venue, &match.Friendly,
		&playerLinesJSON, &teamLinesJSON, &eventsJSON,
	)
	if err != nil {
		return nil, err
	}

	match.HomeScore = intPtr(homeScore)
	match.AwayScore = intPtr(awayScore)
	match.Time = matchTime.String
	match.Venue = venue.String

	if playerLinesJSON.Valid && playerLinesJSON.String != "" {
		if err := json.Unmarshal([]byte(playerLinesJSON.String), &match.PlayerLines); err != nil {
			log.Error("Failed to unmarshal player_lines_json", "error", err, "matchID", match.ID)
		}
	}
	if teamLinesJSON.Valid && teamLinesJSON.String != "" {
		if err := json.Unmarshal([]byte(teamLinesJSON.String), &match.TeamLines); err != nil {
			log.Error("Failed to unmarshal team_lines_json", "error", err, "matchID", match.ID)
		}
	}
	if eventsJSON.Valid && eventsJSON.String != "" {
		if err := json.Unmarshal([]byte(eventsJSON.String), &match.Events); err != nil {
			log.Error("Failed to unmarshal events_json", "error", err, "matchID", match.ID)
		}
	}
	return &match, nil
}

func (s *store) UpsertPlayers(players []Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	for _, p := range players {
		_, err := tx.Exec(`
			INSERT INTO players (id, name) VALUES (?, ?)
			ON CONFLICT(id) DO UPDATE SET name = excluded.name;
		`, p.ID, p.Name)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := s.bumpVersionTx(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// SetManualStat writes one manual override row. An empty seasonKey stores the
// row in the legacy flat list; anything else goes into that season's bucket
// under the key exactly as given.
func (s *store) SetManualStat(playerID, seasonKey string, row ManualCompetitionStat) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO manual_stats (player_id, competition_id, season, matches, minutes, goals, assists, yellow_cards, red_cards, avg_rating)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(player_id, competition_id, season) DO UPDATE SET
			matches = excluded.matches,
			minutes = excluded.minutes,
			goals = excluded.goals,
			assists = excluded.assists,
			yellow_cards = excluded.yellow_cards,
			red_cards = excluded.red_cards,
			avg_rating = excluded.avg_rating;
	`, playerID, row.CompetitionID, seasonKey,
		nullableFloat(row.Matches), nullableFloat(row.Minutes), nullableFloat(row.Goals),
		nullableFloat(row.Assists), nullableFloat(row.YellowCards), nullableFloat(row.RedCards),
		nullableFloat(row.AvgRating))
	if err != nil {
		tx.Rollback()
		return err
	}

	if err := s.bumpVersionTx(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// GetPlayers loads all players with their manual stat rows, legacy and
// season-bucketed alike.
func (s *store) GetPlayers() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name FROM players ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]*Player)
	var order []string
	for rows.Next() {
		var p Player
		var name sql.NullString
		if err := rows.Scan(&p.ID, &name); err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		p.Name = name.String
		byID[p.ID] = &p
		order = append(order, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	statRows, err := s.db.Query(`
		SELECT player_id, competition_id, season, matches, minutes, goals, assists, yellow_cards, red_cards, avg_rating
		FROM manual_stats
	`)
	if err != nil {
		return nil, err
	}
	defer statRows.Close()

	for statRows.Next() {
		var playerID, seasonKey string
		var row ManualCompetitionStat
		var matches, minutes, goals, assists, yellow, red, rating sql.NullFloat64
		err := statRows.Scan(&playerID, &row.CompetitionID, &seasonKey,
			&matches, &minutes, &goals, &assists, &yellow, &red, &rating)
		if err != nil {
			log.Error("Failed to scan manual stat row", "error", err)
			continue
		}
		row.Matches = floatPtr(matches)
		row.Minutes = floatPtr(minutes)
		row.Goals = floatPtr(goals)
		row.Assists = floatPtr(assists)
		row.YellowCards = floatPtr(yellow)
		row.RedCards = floatPtr(red)
		row.AvgRating = floatPtr(rating)

		p, ok := byID[playerID]
		if !ok {
			log.Warn("Manual stat row references unknown player", "playerID", playerID, "competitionID", row.CompetitionID)
			continue
		}
		if seasonKey == "" {
			p.ManualStats = append(p.ManualStats, row)
		} else {
			if p.SeasonStats == nil {
				p.SeasonStats = make(map[string][]ManualCompetitionStat)
			}
			p.SeasonStats[seasonKey] = append(p.SeasonStats[seasonKey], row)
		}
	}
	if err := statRows.Err(); err != nil {
		return nil, err
	}

	players := make([]Player, 0, len(order))
	for _, id := range order {
		players = append(players, *byID[id])
	}
	return players, nil
}

func (s *store) SetManualStandings(competitionID string, standings []Standing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	_, err = tx.Exec("DELETE FROM manual_standings WHERE competition_id = ?", competitionID)
	if err != nil {
		tx.Rollback()
		return err
	}
	for _, row := range standings {
		_, err := tx.Exec(`
			INSERT INTO manual_standings (competition_id, team_id, team_name, rank, played, wins, draws, losses, goals_for, goals_against, goal_difference, points)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, competitionID, row.TeamID, row.TeamName, row.Rank, row.Played, row.Wins, row.Draws, row.Losses,
			row.GoalsFor, row.GoalsAgainst, row.GoalDifference, row.Points)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := s.bumpVersionTx(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *store) GetManualStandings(competitionID string) ([]Standing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT team_id, team_name, rank, played, wins, draws, losses, goals_for, goals_against, goal_difference, points
		FROM manual_standings WHERE competition_id = ? ORDER BY rank
	`, competitionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var standings []Standing
	for rows.Next() {
		var row Standing
		err := rows.Scan(&row.TeamID, &row.TeamName, &row.Rank, &row.Played, &row.Wins, &row.Draws, &row.Losses,
			&row.GoalsFor, &row.GoalsAgainst, &row.GoalDifference, &row.Points)
		if err != nil {
			log.Error("Failed to scan manual standing row", "error", err, "competitionID", competitionID)
			continue
		}
		standings = append(standings, row)
	}
	return standings, rows.Err()
}

// DataVersion returns the monotonic counter bumped by every write. It starts
// at 0 for an empty store.
func (s *store) DataVersion() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRow("SELECT value FROM meta WHERE key = 'data_version'").Scan(&value)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt data_version %q: %w", value, err)
	}
	return v, nil
}

// BumpDataVersion increments the counter outside of any other write, for
// callers that mutate data the store doesn't own.
func (s *store) BumpDataVersion() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	if err := s.bumpVersionTx(tx); err != nil {
		tx.Rollback()
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}

	var value string
	if err := s.db.QueryRow("SELECT value FROM meta WHERE key = 'data_version'").Scan(&value); err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt data_version %q: %w", value, err)
	}
	return v, nil
}

func (s *store) bumpVersionTx(tx *sql.Tx) error {
	_, err := tx.Exec(`
		INSERT INTO meta (key, value) VALUES ('data_version', '1')
		ON CONFLICT(key) DO UPDATE SET value = CAST(CAST(value AS INTEGER) + 1 AS TEXT);
	`)
	return err
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing store", "error", err)
		return
	}

	for _, table := range []string{"matches", "match_index", "rounds", "competitions", "manual_stats", "manual_standings", "players", "teams"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			log.Error("Failed to clear table", "error", err, "table", table)
			tx.Rollback()
			return
		}
	}
	if err := s.bumpVersionTx(tx); err != nil {
		log.Error("Failed to bump data version while clearing store", "error", err)
		tx.Rollback()
		return
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing store", "error", err)
	}
}

func (s *store) ClearMatch(matchID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing match", "error", err, "matchID", matchID)
		return
	}
	if _, err := tx.Exec("DELETE FROM matches WHERE id = ?", matchID); err != nil {
		log.Error("Failed to clear match", "error", err, "matchID", matchID)
		tx.Rollback()
		return
	}
	if _, err := tx.Exec("DELETE FROM match_index WHERE match_id = ?", matchID); err != nil {
		log.Error("Failed to clear match index rows", "error", err, "matchID", matchID)
		tx.Rollback()
		return
	}
	if err := s.bumpVersionTx(tx); err != nil {
		log.Error("Failed to bump data version while clearing match", "error", err)
		tx.Rollback()
		return
	}
	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing match", "error", err, "matchID", matchID)
	}
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func repeatPlaceholder(n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += ", ?"
	}
	return out
}

func ToAnySlice[T any](s []T) []any {
	a := make([]any, len(s))
	for i, v := range s {
		a[i] = v
	}
	return a
}
