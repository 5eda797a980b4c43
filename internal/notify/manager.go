package notify

import (
	"context"
	"os"

	"github.com/spf13/viper"
)

// Manager fans an event out to every configured notifier. Events can be
// toggled individually in the config.
type Manager struct {
	notifiers []Notifier
	logger    func(string, ...interface{})
}

// NewManager creates a notification manager from the loaded configuration.
func NewManager(logger func(string, ...interface{})) *Manager {
	m := &Manager{logger: logger}
	m.initSlack()
	return m
}

func (m *Manager) initSlack() {
	if !viper.GetBool("notifications.slack.enabled") {
		return
	}

	botToken := os.Getenv("SLACK_BOT_USER_TOKEN")
	if botToken == "" {
		if m.logger != nil {
			m.logger("Warning: SLACK_BOT_USER_TOKEN not set, slack notifications disabled")
		}
		return
	}

	channel := viper.GetString("notifications.slack.channel")
	m.notifiers = append(m.notifiers, NewSlackNotifier(botToken, channel))
}

// Add registers an extra notifier.
func (m *Manager) Add(n Notifier) {
	m.notifiers = append(m.notifiers, n)
}

// Enabled reports whether any notifier is configured.
func (m *Manager) Enabled() bool {
	return len(m.notifiers) > 0
}

// Send delivers the message for an event if that event is enabled. Delivery
// failures are logged, never propagated: notifications must not fail the
// command that triggered them.
func (m *Manager) Send(ctx context.Context, event, message string) {
	if !m.Enabled() {
		return
	}
	if !viper.GetBool("notifications.slack.events." + event) {
		return
	}
	for _, n := range m.notifiers {
		if err := n.Notify(ctx, message); err != nil && m.logger != nil {
			m.logger("notification failed: %v", err)
		}
	}
}
