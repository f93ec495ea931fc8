package notifiers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ilindan-dev/channel-notifier/internal/config"
	"github.com/ilindan-dev/channel-notifier/internal/domain/model"
	"github.com/rs/zerolog"
)

const (
	defaultSMSTimeout = 10 * time.Second
	// maxSMSResponseBody caps how much of the gateway's answer is read and logged.
	maxSMSResponseBody = 64 << 10
)

// HTTPDoer performs outbound HTTP requests. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// smsRequest is the JSON body accepted by the SMS gateway.
type smsRequest struct {
	Phone    string `json:"phone"`
	SenderID string `json:"senderid"`
	Message  string `json:"message"`
}

// SMSNotifier posts every message to an HTTP SMS gateway.
type SMSNotifier struct {
	cfg    config.SMSConfig
	client HTTPDoer
	logger zerolog.Logger
}

// NewSMSNotifier creates a new instance of SMSNotifier.
// A nil client is replaced by an *http.Client using cfg.Timeout (10s when unset).
func NewSMSNotifier(cfg config.SMSConfig, client HTTPDoer, logger *zerolog.Logger) *SMSNotifier {
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultSMSTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	return &SMSNotifier{
		cfg:    cfg,
		client: client,
		logger: logger.With().Str("component", "sms_notifier").Logger(),
	}
}

// Send implements the Driver interface for SMS.
func (n *SMSNotifier) Send(ctx context.Context, message string) {
	logOutcome(ctx, n.logger, message, n.deliver(ctx, message))
}

func (n *SMSNotifier) deliver(ctx context.Context, message string) model.SendOutcome {
	body, err := json.Marshal(smsRequest{
		Phone:    n.cfg.ToNumber,
		SenderID: n.cfg.SenderID,
		Message:  message,
	})
	if err != nil {
		return model.Failed(fmt.Errorf("failed to marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return model.Failed(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+n.cfg.APIToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return model.Failed(fmt.Errorf("request failed: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxSMSResponseBody))
	if err != nil {
		return model.Failed(fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.Rejected(resp.StatusCode, string(respBody))
	}
	return model.Delivered()
}
