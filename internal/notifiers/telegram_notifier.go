package notifiers

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ilindan-dev/channel-notifier/internal/config"
	"github.com/ilindan-dev/channel-notifier/internal/domain/model"
	"github.com/rs/zerolog"
)

// TelegramBot is the part of *tgbotapi.BotAPI the telegram driver uses.
type TelegramBot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier sends notifications to one chat via a Telegram bot.
type TelegramNotifier struct {
	bot    TelegramBot
	chatID int64
	logger zerolog.Logger
}

// NewTelegramBot authenticates against the Bot API with the configured token.
func NewTelegramBot(cfg config.TelegramConfig) (*tgbotapi.BotAPI, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot api: %w", err)
	}
	return bot, nil
}

// NewTelegramNotifier creates a new instance of TelegramNotifier.
func NewTelegramNotifier(cfg config.TelegramConfig, bot TelegramBot, logger *zerolog.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		bot:    bot,
		chatID: cfg.ChatID,
		logger: logger.With().Str("component", "telegram_notifier").Int64("chat_id", cfg.ChatID).Logger(),
	}
}

// Send implements the Driver interface for Telegram.
func (n *TelegramNotifier) Send(ctx context.Context, message string) {
	logOutcome(ctx, n.logger, message, n.deliver(ctx, message))
}

func (n *TelegramNotifier) deliver(ctx context.Context, message string) model.SendOutcome {
	if err := ctx.Err(); err != nil {
		return model.Failed(err)
	}
	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, message)); err != nil {
		return model.Failed(fmt.Errorf("failed to send telegram message: %w", err))
	}
	return model.Delivered()
}
