package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/okrbeck/clubtable/internal/club"
	"github.com/okrbeck/clubtable/internal/metrics"
	"github.com/okrbeck/clubtable/internal/notifier"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// Implement the Notifier interface
func (s *Notifier) SendStandings(comp *club.Competition, standings []club.Standing, dryRun bool) error {
	msg := s.formatStandings(comp, standings)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendLeaderboard(entries []notifier.LeaderboardEntry, scope string, dryRun bool) error {
	msg := s.formatLeaderboard(entries, scope)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendPlayerStats(name string, stats club.AggregatedPlayerStats, dryRun bool) error {
	msg := s.formatPlayerStats(name, stats)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendPlayerNotFound(query string, dryRun bool) error {
	msg := s.formatPlayerNotFound(query)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// FormatStandingsResponse formats a standings table for a slash command response.
func (s *Notifier) FormatStandingsResponse(comp *club.Competition, standings []club.Standing) (any, error) {
	return s.formatStandings(comp, standings), nil
}

// FormatLeaderboardResponse formats a leaderboard message for a slash command response.
func (s *Notifier) FormatLeaderboardResponse(entries []notifier.LeaderboardEntry, scope string) (any, error) {
	return s.formatLeaderboard(entries, scope), nil
}

// FormatPlayerStatsResponse formats a player stats message for a slash command response.
func (s *Notifier) FormatPlayerStatsResponse(name string, stats club.AggregatedPlayerStats) (any, error) {
	return s.formatPlayerStats(name, stats), nil
}

// FormatPlayerNotFoundResponse formats a player not found message for a slash command response.
func (s *Notifier) FormatPlayerNotFoundResponse(query string) (any, error) {
	return s.formatPlayerNotFound(query), nil
}

// formatStandings creates the Slack message for a league table using Block Kit.
func (s *Notifier) formatStandings(comp *club.Competition, standings []club.Standing) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("📊 %s - %s", comp.Name, comp.Season), false, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(standings) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No table available yet.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	var rows []string
	rows = append(rows, fmt.Sprintf("%-3s %-20s %3s %3s %3s %3s %5s %4s %4s", "#", "Team", "P", "W", "D", "L", "GF:GA", "GD", "Pts"))
	for _, st := range standings {
		rows = append(rows, fmt.Sprintf("%-3d %-20s %3d %3d %3d %3d %3d:%-3d %+4d %4d",
			st.Rank,
			truncate(st.TeamName, 20),
			st.Played,
			st.Wins,
			st.Draws,
			st.Losses,
			st.GoalsFor,
			st.GoalsAgainst,
			st.GoalDifference,
			st.Points,
		))
	}
	tableText := fmt.Sprintf("```%s```", strings.Join(rows, "\n"))
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", tableText, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatLeaderboard creates a Slack message to display the player leaderboard.
func (s *Notifier) formatLeaderboard(entries []notifier.LeaderboardEntry, scope string) slack.Message {
	blocks := make([]slack.Block, 0)

	header := "🏆 Player Leaderboard 🏆"
	if scope != "" && scope != "all" {
		header = fmt.Sprintf("🏆 Player Leaderboard - %s 🏆", scope)
	}
	headerText := slack.NewTextBlockObject("plain_text", header, false, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(entries) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No stats available yet. Go play some matches!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for i, entry := range entries {
		rank := i + 1
		var medal string
		switch rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}

		playerText := fmt.Sprintf("%d. %s %s\n> Goals: %d | Assists: %d | Apps: %d | Minutes: %d",
			rank,
			medal,
			entry.PlayerName,
			entry.Stats.Goals,
			entry.Stats.Assists,
			entry.Stats.Appearances,
			entry.Stats.Minutes,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", playerText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerStats creates a Slack message to display a single player's stats.
func (s *Notifier) formatPlayerStats(name string, stats club.AggregatedPlayerStats) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := fmt.Sprintf("🏆 Stats for %s 🏆", name)
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headerText, true, false)))

	playerText := fmt.Sprintf("> *Goals*: %d\n> *Assists*: %d\n> *Appearances*: %d\n> *Minutes*: %d\n> *Yellow cards*: %d\n> *Red cards*: %d",
		stats.Goals,
		stats.Assists,
		stats.Appearances,
		stats.Minutes,
		stats.YellowCards,
		stats.RedCards,
	)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", playerText, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerNotFound creates a Slack message for when a player's stats are not found.
func (s *Notifier) formatPlayerNotFound(query string) slack.Message {
	text := fmt.Sprintf("Sorry, I couldn't find a player matching *%s*. Try a different name.", query)
	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil),
	)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
