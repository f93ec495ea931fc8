package notifiers

import (
	"context"

	"github.com/ilindan-dev/channel-notifier/internal/domain/model"
	"github.com/rs/zerolog"
)

// LogNotifier is a mock driver: it logs the message instead of sending it
// through a real channel. In log_only mode it stands in for email and sms.
type LogNotifier struct {
	channel model.Channel
	logger  zerolog.Logger
}

// NewLogNotifier creates a LogNotifier reporting messages as sent over channel.
func NewLogNotifier(channel model.Channel, logger *zerolog.Logger) *LogNotifier {
	return &LogNotifier{
		channel: channel,
		logger: logger.With().
			Str("component", "log_notifier").
			Str("channel", string(channel)).
			Logger(),
	}
}

// Send implements the Driver interface.
func (n *LogNotifier) Send(ctx context.Context, message string) {
	logOutcome(ctx, n.logger, message, model.Delivered())
}
