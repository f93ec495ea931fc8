package service

import (
	"context"

	"github.com/ilindan-dev/channel-notifier/internal/domain/model"
	"github.com/ilindan-dev/channel-notifier/internal/logger"
	"github.com/ilindan-dev/channel-notifier/internal/notifiers"
	"github.com/rs/zerolog"
)

const (
	TestEmailMessage = "This is a test email notification."
	TestSMSMessage   = "This is a test SMS notification."

	TestEmailConfirmation = "Test email dispatched"
	TestSMSConfirmation   = "Test SMS dispatched"
)

// DriverResolver resolves channel names to drivers. *notifiers.Manager implements it.
type DriverResolver interface {
	Driver(name model.Channel) (notifiers.Driver, error)
	DefaultDriverName() model.Channel
	Channels() []model.Channel
}

// NotificationService is the entry point used by the HTTP API and the CLI.
type NotificationService struct {
	drivers DriverResolver
	logger  zerolog.Logger
}

func NewNotificationService(drivers DriverResolver, logger *zerolog.Logger) *NotificationService {
	return &NotificationService{
		drivers: drivers,
		logger:  logger.With().Str("layer", "service").Logger(),
	}
}

// Send resolves channel (the default one when empty) and sends message over it.
// Only resolution errors are returned; delivery failures end up in the log.
func (s *NotificationService) Send(ctx context.Context, channel model.Channel, message string) (model.Channel, error) {
	resolved, err := s.dispatch(ctx, channel, message)
	if err != nil {
		log := logger.FromContext(ctx, s.logger)
		log.Warn().Err(err).Str("channel", string(channel)).Msg("cannot resolve driver")
	}
	return resolved, err
}

// SendTestEmail sends a fixed message over the email channel.
func (s *NotificationService) SendTestEmail(ctx context.Context) string {
	s.sendTest(ctx, model.ChannelEmail, TestEmailMessage)
	return TestEmailConfirmation
}

// SendTestSMS sends a fixed message over the sms channel.
func (s *NotificationService) SendTestSMS(ctx context.Context) string {
	s.sendTest(ctx, model.ChannelSMS, TestSMSMessage)
	return TestSMSConfirmation
}

// sendTest never reports failure to the invoker; a resolution error is only logged.
func (s *NotificationService) sendTest(ctx context.Context, channel model.Channel, message string) {
	if _, err := s.dispatch(ctx, channel, message); err != nil {
		log := logger.FromContext(ctx, s.logger)
		log.Error().Err(err).Str("channel", string(channel)).Msg("test notification not dispatched")
	}
}

// dispatch resolves the driver and hands it the message. It leaves logging of
// resolution errors to its callers.
func (s *NotificationService) dispatch(ctx context.Context, channel model.Channel, message string) (model.Channel, error) {
	resolved := channel
	if resolved == "" {
		resolved = s.drivers.DefaultDriverName()
	}

	driver, err := s.drivers.Driver(channel)
	if err != nil {
		return resolved, err
	}

	log := logger.FromContext(ctx, s.logger)
	log.Info().Str("channel", string(resolved)).Msg("dispatching notification")
	driver.Send(ctx, message)
	return resolved, nil
}

// Channels lists the channels that can be resolved.
func (s *NotificationService) Channels() []model.Channel {
	return s.drivers.Channels()
}

// DefaultChannel returns the configured default channel, empty when unset.
func (s *NotificationService) DefaultChannel() model.Channel {
	return s.drivers.DefaultDriverName()
}
