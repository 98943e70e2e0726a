package processor

import (
	"github.com/okrbeck/clubtable/internal/club"
	"github.com/okrbeck/clubtable/internal/notifier"
)

// Store defines the database operations required by the processor.
type Store interface {
	GetTeams(teamIDs []string) ([]club.Team, error)
	GetCompetition(competitionID string) (*club.Competition, error)
	GetCompetitions() ([]club.Competition, error)
	UpsertMatch(match *club.Match) error
	GetAllMatches() ([]club.Match, error)
	GetMatchesForCompetitions(competitionIDs []string) ([]club.Match, error)
	GetMatchesByTeam(teamID string) ([]club.Match, error)
	GetIndexMatchesByTeam(teamID string) ([]club.Match, error)
	GetPlayers() ([]club.Player, error)
	GetManualStandings(competitionID string) ([]club.Standing, error)
	DataVersion() (uint64, error)
}

// Notifier defines the notification operations required by the processor.
// It embeds the full notifier interface, as the processor uses all of it.
type Notifier interface {
	notifier.Notifier
}
