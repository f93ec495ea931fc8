package notifiers

import (
	"context"
	"errors"
	"html"

	"github.com/ilindan-dev/channel-notifier/internal/config"
	"github.com/ilindan-dev/channel-notifier/internal/domain/model"
	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// EmailSubject is the subject of every email sent by EmailNotifier.
const EmailSubject = "Notification"

// ErrNoSender is returned when neither the message nor the SMTP settings name a sender.
var ErrNoSender = errors.New("no sender address: set notifiers.email.smtp.from")

// Mailer submits a composed message to the mail delivery system.
type Mailer interface {
	Send(ctx context.Context, m *gomail.Message) error
}

// SMTPMailer delivers messages through an SMTP server.
type SMTPMailer struct {
	send func(m ...*gomail.Message) error
	from string
}

// NewSMTPMailer creates a Mailer for the configured SMTP server.
// from is used for messages that carry no From header.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &SMTPMailer{
		// DialAndSend opens a connection, sends the email, and closes it.
		send: dialer.DialAndSend,
		from: cfg.From,
	}
}

// Send implements Mailer. gomail has no context support; ctx is only checked before dialing.
func (s *SMTPMailer) Send(ctx context.Context, m *gomail.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(m.GetHeader("From")) == 0 {
		if s.from == "" {
			return ErrNoSender
		}
		m.SetHeader("From", s.from)
	}
	return s.send(m)
}

// EmailNotifier sends every message to the configured address as an HTML email.
type EmailNotifier struct {
	cfg    config.EmailConfig
	mailer Mailer
	logger zerolog.Logger
}

// NewEmailNotifier creates a new instance of EmailNotifier.
func NewEmailNotifier(cfg config.EmailConfig, mailer Mailer, logger *zerolog.Logger) *EmailNotifier {
	return &EmailNotifier{
		cfg:    cfg,
		mailer: mailer,
		logger: logger.With().Str("component", "email_notifier").Logger(),
	}
}

// Send implements the Driver interface for email.
func (n *EmailNotifier) Send(ctx context.Context, message string) {
	logOutcome(ctx, n.logger, message, n.deliver(ctx, message))
}

func (n *EmailNotifier) deliver(ctx context.Context, message string) model.SendOutcome {
	if err := n.mailer.Send(ctx, n.compose(message)); err != nil {
		return model.Failed(err)
	}
	return model.Delivered()
}

func (n *EmailNotifier) compose(message string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("To", n.cfg.ToAddress)
	m.SetHeader("Subject", EmailSubject)
	m.SetBody("text/html", "<p>"+html.EscapeString(message)+"</p>")
	return m
}
