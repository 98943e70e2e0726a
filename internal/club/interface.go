package club

// ClubStore defines the interface for interacting with the club's data.
// Every mutating call bumps the data version synchronously, so cache keys
// derived from DataVersion can never serve stale aggregates.
type ClubStore interface {
	UpsertTeams(teams []Team) error
	GetTeams(teamIDs []string) ([]Team, error)
	GetAllTeams() ([]Team, error)

	UpsertCompetition(comp *Competition) error
	GetCompetition(competitionID string) (*Competition, error)
	GetCompetitions() ([]Competition, error)

	UpsertMatch(match *Match) error
	GetMatchesForCompetitions(competitionIDs []string) ([]Match, error)
	GetAllMatches() ([]Match, error)
	GetMatchesByTeam(teamID string) ([]Match, error)
	GetIndexMatchesByTeam(teamID string) ([]Match, error)

	UpsertPlayers(players []Player) error
	GetPlayers() ([]Player, error)
	SetManualStat(playerID, seasonKey string, row ManualCompetitionStat) error

	SetManualStandings(competitionID string, rows []Standing) error
	GetManualStandings(competitionID string) ([]Standing, error)

	DataVersion() (uint64, error)
	BumpDataVersion() (uint64, error)

	Clear()
	ClearMatch(matchID string)
}
