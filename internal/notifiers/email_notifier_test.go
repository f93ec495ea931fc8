package notifiers

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/ilindan-dev/channel-notifier/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeMailer struct {
	err  error
	sent []*gomail.Message
}

func (f *fakeMailer) Send(_ context.Context, m *gomail.Message) error {
	f.sent = append(f.sent, m)
	return f.err
}

var testEmailConfig = config.EmailConfig{
	FromAddress: "noreply@example.com",
	ToAddress:   "ops@example.com",
}

func TestEmailNotifier_Success(t *testing.T) {
	logger, rec := newTestLogger()
	mailer := &fakeMailer{}
	n := NewEmailNotifier(testEmailConfig, mailer, logger)

	n.Send(context.Background(), "hello")

	require.Len(t, mailer.sent, 1)
	msg := mailer.sent[0]
	assert.Equal(t, []string{"ops@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{EmailSubject}, msg.GetHeader("Subject"))
	assert.Empty(t, msg.GetHeader("From"))

	var body bytes.Buffer
	_, err := msg.WriteTo(&body)
	require.NoError(t, err)
	assert.Contains(t, body.String(), "text/html")
	assert.Contains(t, body.String(), "<p>hello</p>")

	infos := rec.records(t, "info")
	require.Len(t, infos, 1)
	assert.Equal(t, "hello", infos[0]["content"])
	assert.Empty(t, rec.records(t, "error"))
}

func TestEmailNotifier_EscapesMessage(t *testing.T) {
	logger, _ := newTestLogger()
	mailer := &fakeMailer{}
	n := NewEmailNotifier(testEmailConfig, mailer, logger)

	n.Send(context.Background(), "<b>x</b>")

	require.Len(t, mailer.sent, 1)
	var body bytes.Buffer
	_, err := mailer.sent[0].WriteTo(&body)
	require.NoError(t, err)
	assert.Contains(t, body.String(), "&lt;b&gt;x&lt;/b&gt;")
}

func TestEmailNotifier_FailureIsLoggedNotPropagated(t *testing.T) {
	logger, rec := newTestLogger()
	mailer := &fakeMailer{err: errors.New("connection refused")}
	n := NewEmailNotifier(testEmailConfig, mailer, logger)

	assert.NotPanics(t, func() {
		n.Send(context.Background(), "hello")
	})

	errs := rec.records(t, "error")
	require.Len(t, errs, 1)
	assert.Equal(t, "connection refused", errs[0]["error"])
	assert.Empty(t, rec.records(t, "info"))
}

func TestSMTPMailer_CancelledContext(t *testing.T) {
	m := NewSMTPMailer(config.SMTPConfig{Host: "localhost", Port: 1, From: "noreply@example.com"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Send(ctx, gomail.NewMessage())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSMTPMailer_From(t *testing.T) {
	tests := []struct {
		name     string
		smtpFrom string
		msgFrom  string
		wantFrom []string
		wantErr  error
	}{
		{name: "filled from smtp settings", smtpFrom: "noreply@example.com", wantFrom: []string{"noreply@example.com"}},
		{name: "message sender kept", smtpFrom: "noreply@example.com", msgFrom: "alerts@example.com", wantFrom: []string{"alerts@example.com"}},
		{name: "message sender without smtp from", msgFrom: "alerts@example.com", wantFrom: []string{"alerts@example.com"}},
		{name: "no sender anywhere", wantErr: ErrNoSender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewSMTPMailer(config.SMTPConfig{Host: "localhost", Port: 1, From: tt.smtpFrom})
			var submitted []*gomail.Message
			m.send = func(msgs ...*gomail.Message) error {
				submitted = append(submitted, msgs...)
				return nil
			}

			msg := gomail.NewMessage()
			if tt.msgFrom != "" {
				msg.SetHeader("From", tt.msgFrom)
			}

			err := m.Send(context.Background(), msg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, submitted)
				return
			}
			require.NoError(t, err)
			require.Len(t, submitted, 1)
			assert.Equal(t, tt.wantFrom, submitted[0].GetHeader("From"))
		})
	}
}
