package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	// EventStatsInvalidated is published after any write that can change
	// aggregation results, carrying the new data version.
	EventStatsInvalidated EventType = "stats-invalidated"
	// EventNotifyStandings asks the notifier worker to post an updated table.
	EventNotifyStandings EventType = "notify-standings"
)

// StatsInvalidated is the payload of EventStatsInvalidated.
type StatsInvalidated struct {
	DataVersion uint64 `msgpack:"data_version"`
}

// NotifyStandings is the payload of EventNotifyStandings.
type NotifyStandings struct {
	CompetitionID string `msgpack:"competition_id"`
}
