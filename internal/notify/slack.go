package notify

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

// slackAPI is the slice of the Slack client the notifier needs; tests
// substitute a fake.
type slackAPI interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// SlackNotifier posts messages to a channel through the Slack Web API.
type SlackNotifier struct {
	client  slackAPI
	channel string
}

// NewSlackNotifier creates a notifier for the given bot token and channel.
func NewSlackNotifier(botToken, channel string) *SlackNotifier {
	return &SlackNotifier{
		client:  slack.New(botToken),
		channel: channel,
	}
}

// Notify posts the message to the configured channel.
func (s *SlackNotifier) Notify(ctx context.Context, message string) error {
	if s.channel == "" {
		return fmt.Errorf("slack channel is not configured")
	}
	_, _, err := s.client.PostMessageContext(ctx, s.channel, slack.MsgOptionText(message, false))
	if err != nil {
		return fmt.Errorf("failed to send slack notification: %w", err)
	}
	return nil
}
