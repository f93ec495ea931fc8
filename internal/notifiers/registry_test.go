package notifiers

import (
	"testing"

	"github.com/ilindan-dev/channel-notifier/internal/config"
	"github.com/ilindan-dev/channel-notifier/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerFromConfig(t *testing.T) {
	t.Run("production binds real transports", func(t *testing.T) {
		logger, _ := newTestLogger()
		cfg := &config.Config{Notifiers: config.NotifiersConfig{
			Mode:    config.ModeProduction,
			Default: "email",
			Email:   config.EmailConfig{ToAddress: "ops@example.com"},
			SMS:     config.SMSConfig{APIURL: "https://sms.example.com/send"},
		}}

		m := NewManagerFromConfig(cfg, logger)
		assert.Equal(t, model.ChannelEmail, m.DefaultDriverName())
		assert.Equal(t, []model.Channel{model.ChannelEmail, model.ChannelLog, model.ChannelSMS}, m.Channels())

		email, err := m.Default()
		require.NoError(t, err)
		assert.IsType(t, &EmailNotifier{}, email)

		sms, err := m.Driver(model.ChannelSMS)
		require.NoError(t, err)
		assert.IsType(t, &SMSNotifier{}, sms)

		_, err = m.Driver(model.ChannelTelegram)
		assert.ErrorIs(t, err, ErrUnknownDriver)
	})

	t.Run("log_only binds log drivers", func(t *testing.T) {
		logger, _ := newTestLogger()
		cfg := &config.Config{Notifiers: config.NotifiersConfig{Mode: config.ModeLogOnly, Default: "sms"}}

		m := NewManagerFromConfig(cfg, logger)

		for _, ch := range []model.Channel{model.ChannelEmail, model.ChannelSMS, model.ChannelLog} {
			d, err := m.Driver(ch)
			require.NoError(t, err)
			assert.IsType(t, &LogNotifier{}, d, ch)
		}
	})

	t.Run("telegram registered when token set", func(t *testing.T) {
		logger, _ := newTestLogger()
		cfg := &config.Config{Notifiers: config.NotifiersConfig{
			Mode:     config.ModeProduction,
			Telegram: config.TelegramConfig{BotToken: "123:abc", ChatID: 1},
		}}

		m := NewManagerFromConfig(cfg, logger)
		assert.Contains(t, m.Channels(), model.ChannelTelegram)
	})

	t.Run("warns when smtp sender missing", func(t *testing.T) {
		logger, rec := newTestLogger()
		cfg := &config.Config{Notifiers: config.NotifiersConfig{Mode: config.ModeProduction}}

		NewManagerFromConfig(cfg, logger)
		warns := rec.records(t, "warn")
		require.Len(t, warns, 1)
		assert.Contains(t, warns[0]["message"], "smtp.from")

		logger, rec = newTestLogger()
		cfg.Notifiers.Email.SMTP.From = "noreply@example.com"
		NewManagerFromConfig(cfg, logger)
		assert.Empty(t, rec.records(t, "warn"))
	})
}
