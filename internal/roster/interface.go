package roster

// Provider supplies the authoritative set of player ids belonging to a team
// for a given season. The aggregator treats the result as an opaque
// allow-list; how membership is decided is not its concern.
type Provider interface {
	TeamRoster(teamID, seasonScope string) ([]string, error)
}
