package club

import (
	"database/sql"
	"math"
	"sync"
)

// store handles all database operations for the club.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// CompetitionFormat describes how a competition is played and therefore how
// (and whether) a league table is computed for it.
type CompetitionFormat string

const (
	FormatLeague    CompetitionFormat = "league"
	FormatCup       CompetitionFormat = "cup"
	FormatLeagueCup CompetitionFormat = "league_cup"
)

// EventType is the kind of a timestamped match event.
type EventType string

const (
	EventGoal         EventType = "goal"
	EventCard         EventType = "card"
	EventSubstitution EventType = "substitution"
	EventNote         EventType = "note"
)

// RankLabel tags a contiguous rank range in a league table with a color
// (promotion, relegation, playoff spots and the like).
type RankLabel struct {
	From  int    `json:"from"`
	To    int    `json:"to"`
	Color string `json:"color"`
}

// Round belongs to exactly one competition. For league_cup competitions only
// rounds following the matchday naming convention count towards the table.
type Round struct {
	ID            string `json:"id"`
	CompetitionID string `json:"competition_id"`
	Name          string `json:"name"`
}

// Competition is one competitive context within a season.
type Competition struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Season     string            `json:"season"`
	Format     CompetitionFormat `json:"format"`
	TeamIDs    []string          `json:"team_ids"`
	RankLabels []RankLabel       `json:"rank_labels,omitempty"`
	Rounds     []Round           `json:"rounds,omitempty"`
}

// PlayerStatLine is one player's line in one match. A Rating of 0 means
// "not rated", not "rated zero".
type PlayerStatLine struct {
	PlayerID      string  `json:"player_id"`
	MinutesPlayed int     `json:"minutes_played"`
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	YellowCards   int     `json:"yellow_cards"`
	RedCards      int     `json:"red_cards"`
	Rating        float64 `json:"rating"`
}

// TeamStatLine is a generic named metric with a value per side
// (possession, shots, corners, ...).
type TeamStatLine struct {
	Name string `json:"name"`
	Home int    `json:"home"`
	Away int    `json:"away"`
}

// MatchEvent is a timestamped in-match occurrence. The player references are
// role-specific: a goal carries scorer and optional assist, a substitution
// carries the players coming on and off.
type MatchEvent struct {
	Type        EventType `json:"type"`
	Minute      int       `json:"minute"`
	TeamID      string    `json:"team_id"`
	PlayerID    string    `json:"player_id,omitempty"`
	AssistID    string    `json:"assist_id,omitempty"`
	PlayerInID  string    `json:"player_in_id,omitempty"`
	PlayerOutID string    `json:"player_out_id,omitempty"`
	Note        string    `json:"note,omitempty"`
}

// Match is a single fixture. Scores are nil until the match has been played;
// a match with either score missing contributes to no table and no aggregate.
// Friendly matches live under a synthetic round outside any competition tree.
type Match struct {
	ID            string           `json:"id"`
	CompetitionID string           `json:"competition_id"`
	RoundID       string           `json:"round_id"`
	HomeTeamID    string           `json:"home_team_id"`
	AwayTeamID    string           `json:"away_team_id"`
	HomeScore     *int             `json:"home_score,omitempty"`
	AwayScore     *int             `json:"away_score,omitempty"`
	Date          string           `json:"date,omitempty"` // zero-padded ISO, sortable as a string
	Time          string           `json:"time,omitempty"`
	Venue         string           `json:"venue,omitempty"`
	Friendly      bool             `json:"friendly,omitempty"`
	PlayerLines   []PlayerStatLine `json:"player_lines,omitempty"`
	TeamLines     []TeamStatLine   `json:"team_lines,omitempty"`
	Events        []MatchEvent     `json:"events,omitempty"`
}

// Played reports whether both scores have been entered.
func (m *Match) Played() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

// ManualCompetitionStat is a hand-entered statistics row for one player in one
// competition. Fields are pointers: presence of any value, zero included,
// makes the row an active override that fully replaces computed aggregation
// for that (player, competition) pair.
type ManualCompetitionStat struct {
	CompetitionID string   `json:"competition_id"`
	Matches       *float64 `json:"matches,omitempty"`
	Minutes       *float64 `json:"minutes,omitempty"`
	Goals         *float64 `json:"goals,omitempty"`
	Assists       *float64 `json:"assists,omitempty"`
	YellowCards   *float64 `json:"yellow_cards,omitempty"`
	RedCards      *float64 `json:"red_cards,omitempty"`
	AvgRating     *float64 `json:"avg_rating,omitempty"`
}

// Active reports whether any of the row's enumerated numeric fields carries a
// finite value. A row with only NaN/Inf garbage is not an override.
func (m ManualCompetitionStat) Active() bool {
	for _, f := range []*float64{m.Matches, m.Minutes, m.Goals, m.Assists, m.YellowCards, m.RedCards, m.AvgRating} {
		if f != nil && !math.IsNaN(*f) && !math.IsInf(*f, 0) {
			return true
		}
	}
	return false
}

// Player carries the manual stat rows attached to a player. SeasonStats is
// keyed by the season string as stored (any encoding); ManualStats is the
// legacy flat list predating season buckets.
type Player struct {
	ID          string                             `json:"id"`
	Name        string                             `json:"name"`
	SeasonStats map[string][]ManualCompetitionStat `json:"season_stats,omitempty"`
	ManualStats []ManualCompetitionStat            `json:"manual_stats,omitempty"`
}

// AggregatedPlayerStats is the derived per-player output of an aggregation
// pass. It is never a source of truth; a missing player key means all-zero.
type AggregatedPlayerStats struct {
	Appearances int `json:"appearances"`
	Minutes     int `json:"minutes"`
	Goals       int `json:"goals"`
	Assists     int `json:"assists"`
	YellowCards int `json:"yellow_cards"`
	RedCards    int `json:"red_cards"`
}

// Standing is one team's row in a league table.
type Standing struct {
	TeamID         string `json:"team_id"`
	TeamName       string `json:"team_name"`
	Rank           int    `json:"rank"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

// Team is a club team participating in competitions.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
