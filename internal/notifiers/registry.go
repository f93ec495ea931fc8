package notifiers

import (
	"github.com/ilindan-dev/channel-notifier/internal/config"
	"github.com/ilindan-dev/channel-notifier/internal/domain/model"
	"github.com/rs/zerolog"
)

// NewManagerFromConfig creates a Manager with a creator for every configured channel.
// Creators only capture configuration; transports are built on first resolution.
func NewManagerFromConfig(cfg *config.Config, logger *zerolog.Logger) *Manager {
	nc := cfg.Notifiers
	m := NewManager(model.Channel(nc.Default), logger)

	log := logger.With().Str("component", "driver_registry").Logger()
	log.Info().Str("mode", nc.Mode).Str("default", nc.Default).Msg("registering notification drivers")

	m.Extend(model.ChannelLog, func() (Driver, error) {
		return NewLogNotifier(model.ChannelLog, logger), nil
	})

	if nc.Mode == config.ModeLogOnly {
		m.Extend(model.ChannelEmail, func() (Driver, error) {
			return NewLogNotifier(model.ChannelEmail, logger), nil
		})
		m.Extend(model.ChannelSMS, func() (Driver, error) {
			return NewLogNotifier(model.ChannelSMS, logger), nil
		})
		return m
	}

	if nc.Email.SMTP.From == "" {
		log.Warn().Msg("notifiers.email.smtp.from is empty, emails will be rejected")
	}
	m.Extend(model.ChannelEmail, func() (Driver, error) {
		return NewEmailNotifier(nc.Email, NewSMTPMailer(nc.Email.SMTP), logger), nil
	})
	m.Extend(model.ChannelSMS, func() (Driver, error) {
		return NewSMSNotifier(nc.SMS, nil, logger), nil
	})

	if nc.Telegram.BotToken != "" {
		m.Extend(model.ChannelTelegram, func() (Driver, error) {
			bot, err := NewTelegramBot(nc.Telegram)
			if err != nil {
				return nil, err
			}
			return NewTelegramNotifier(nc.Telegram, bot, logger), nil
		})
		log.Info().Msg("telegram driver registered")
	}

	return m
}
