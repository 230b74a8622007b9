package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// noopClient is used when no GCP project is configured.
type noopClient struct{}

// EventType represents the type of event/message sent via pubsub.
// It doubles as the topic name.
type EventType string

const (
	EventScorecardSaved   EventType = "scorecard-saved"
	EventScorecardRemoved EventType = "scorecard-removed"
)

// ScorecardEvent is published whenever a scorecard is created, updated or removed.
type ScorecardEvent struct {
	GameID      string `msgpack:"game_id"`
	RoundID     string `msgpack:"round_id"`
	ScorecardID string `msgpack:"scorecard_id"`
}
