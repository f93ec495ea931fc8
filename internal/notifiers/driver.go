package notifiers

import (
	"context"

	"github.com/ilindan-dev/channel-notifier/internal/domain/model"
	"github.com/ilindan-dev/channel-notifier/internal/logger"
	"github.com/rs/zerolog"
)

// Driver sends messages over a single channel.
// Send never reports a failure to the caller: every attempt ends in exactly
// one log record, info on success and error otherwise.
type Driver interface {
	Send(ctx context.Context, message string)
}

// logOutcome turns the result of a transmission into the driver's log record.
// The record carries the request id found in ctx.
func logOutcome(ctx context.Context, base zerolog.Logger, message string, outcome model.SendOutcome) {
	log := logger.FromContext(ctx, base)
	if outcome.Success {
		log.Info().Str("content", message).Msg("notification sent")
		return
	}

	event := log.Error().Err(outcome.Err)
	if outcome.StatusCode != 0 {
		event = event.Int("status", outcome.StatusCode).Str("body", outcome.Body)
	}
	event.Msg("notification failed")
}
