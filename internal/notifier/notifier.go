package notifier

import (
	"github.com/okrbeck/clubtable/internal/club"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For updated league tables
	SendStandings(comp *club.Competition, standings []club.Standing, dryRun bool) error
	// For slash commands
	SendLeaderboard(entries []LeaderboardEntry, scope string, dryRun bool) error
	SendPlayerStats(name string, stats club.AggregatedPlayerStats, dryRun bool) error
	SendPlayerNotFound(query string, dryRun bool) error

	// For formatting responses for slash commands
	FormatStandingsResponse(comp *club.Competition, standings []club.Standing) (any, error)
	FormatLeaderboardResponse(entries []LeaderboardEntry, scope string) (any, error)
	FormatPlayerStatsResponse(name string, stats club.AggregatedPlayerStats) (any, error)
	FormatPlayerNotFoundResponse(query string) (any, error)
}

// LeaderboardEntry pairs a player name with their aggregated stats so the
// notifier can render an ordered leaderboard without knowing player IDs.
type LeaderboardEntry struct {
	PlayerName string
	Stats      club.AggregatedPlayerStats
}
