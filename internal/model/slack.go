package model

import "github.com/slack-go/slack"

// SlackEvent represents a Slack event callback envelope. slackevents handles
// classification; this envelope exists because the mention text lives in the
// Block Kit payload, which the library's inner event types do not carry.
type SlackEvent struct {
	Token       string   `json:"token"`
	TeamID      string   `json:"team_id"`
	APIAppID    string   `json:"api_app_id"`
	Event       Event    `json:"event"`
	Type        string   `json:"type"`
	EventID     string   `json:"event_id"`
	EventTime   int      `json:"event_time"`
	AuthedUsers []string `json:"authed_users"`
}

// Event represents the actual Slack event
type Event struct {
	Type     string       `json:"type"`
	User     string       `json:"user"`
	BotID    string       `json:"bot_id,omitempty"`
	Text     string       `json:"text"`
	Blocks   slack.Blocks `json:"blocks,omitempty"`
	Channel  string       `json:"channel"`
	TS       string       `json:"ts"`
	ThreadTS string       `json:"thread_ts,omitempty"`
}

// SlackResponse is the incoming-webhook payload for posting a reply.
type SlackResponse struct {
	Text string `json:"text"`
}
