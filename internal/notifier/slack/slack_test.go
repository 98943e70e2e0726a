package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/okrbeck/clubtable/internal/club"
	"github.com/okrbeck/clubtable/internal/metrics"
	"github.com/okrbeck/clubtable/internal/notifier"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, true)
	require.NoError(t, err)
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	_, _, err := notifier.sendMessage(message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.NotifSentCount)
	assert.Equal(t, 0, metrics.NotifFailedCount)
}

func TestSendMessage_Failure(t *testing.T) {
	postMessageCalled := false
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 0, metrics.NotifSentCount)
	assert.Equal(t, 1, metrics.NotifFailedCount)
}

// Test one of the public methods to ensure it calls the private sender.
func TestSendStandings_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	n := NewNotifierWithAPI(api, "C123", metrics)

	comp := &club.Competition{ID: "c1", Name: "Serie 2", Season: "2024/25", Format: club.FormatLeague}
	standings := []club.Standing{
		{TeamID: "tA", TeamName: "Alpha", Rank: 1, Played: 1, Wins: 1, GoalsFor: 3, GoalsAgainst: 1, GoalDifference: 2, Points: 3},
	}

	err := n.SendStandings(comp, standings, false)
	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called via SendStandings")
}

func TestFormatStandings(t *testing.T) {
	n := &Notifier{channelID: "C123"}
	comp := &club.Competition{ID: "c1", Name: "Serie 2", Season: "2024/25", Format: club.FormatLeague}
	standings := []club.Standing{
		{TeamID: "tA", TeamName: "Alpha", Rank: 1, Played: 2, Wins: 2, GoalsFor: 5, GoalsAgainst: 1, GoalDifference: 4, Points: 6},
		{TeamID: "tB", TeamName: "Bravo", Rank: 2, Played: 2, Losses: 2, GoalsFor: 1, GoalsAgainst: 5, GoalDifference: -4, Points: 0},
	}

	msg := n.formatStandings(comp, standings)
	require.Len(t, msg.Blocks.BlockSet, 2, "Expected header and table blocks")

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, "Serie 2")
	assert.Contains(t, header.Text.Text, "2024/25")

	table, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, table.Text.Text, "Alpha")
	assert.Contains(t, table.Text.Text, "Bravo")
	assert.Contains(t, table.Text.Text, "```")
}

func TestFormatStandings_Empty(t *testing.T) {
	n := &Notifier{channelID: "C123"}
	comp := &club.Competition{ID: "c1", Name: "Cup", Season: "2024/25", Format: club.FormatCup}

	msg := n.formatStandings(comp, nil)
	require.Len(t, msg.Blocks.BlockSet, 2)

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "No table available")
}

func TestFormatLeaderboard(t *testing.T) {
	n := &Notifier{channelID: "C123"}
	entries := []notifier.LeaderboardEntry{
		{PlayerName: "Anna", Stats: club.AggregatedPlayerStats{Goals: 7, Assists: 3, Appearances: 10, Minutes: 870}},
		{PlayerName: "Bo", Stats: club.AggregatedPlayerStats{Goals: 4, Assists: 6, Appearances: 9, Minutes: 700}},
	}

	msg := n.formatLeaderboard(entries, "2024/25")
	require.Len(t, msg.Blocks.BlockSet, 3, "Expected header plus one block per player")

	first, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, first.Text.Text, "Anna")
	assert.Contains(t, first.Text.Text, "🥇")
	assert.Contains(t, first.Text.Text, "Goals: 7")
}

func TestFormatLeaderboard_Empty(t *testing.T) {
	n := &Notifier{channelID: "C123"}
	msg := n.formatLeaderboard(nil, "all")
	require.Len(t, msg.Blocks.BlockSet, 2)

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "No stats available")
}

func TestFormatPlayerStats(t *testing.T) {
	n := &Notifier{channelID: "C123"}
	stats := club.AggregatedPlayerStats{Goals: 2, Assists: 1, Appearances: 5, Minutes: 420, YellowCards: 1}

	msg := n.formatPlayerStats("Anna", stats)
	require.Len(t, msg.Blocks.BlockSet, 2)

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, "Anna")

	body, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, body.Text.Text, "*Goals*: 2")
	assert.Contains(t, body.Text.Text, "*Minutes*: 420")
}

func TestFormatPlayerNotFound(t *testing.T) {
	n := &Notifier{channelID: "C123"}
	msg := n.formatPlayerNotFound("zlatan")
	require.Len(t, msg.Blocks.BlockSet, 1)

	section, ok := msg.Blocks.BlockSet[0].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "zlatan")
}
