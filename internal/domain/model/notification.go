package model

import "fmt"

// Channel is the name of a delivery channel (e.g., email, sms).
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelSMS      Channel = "sms"
	ChannelTelegram Channel = "telegram"
	ChannelLog      Channel = "log" // Writes the message to the application log only.
)

// String implements fmt.Stringer.
func (c Channel) String() string {
	return string(c)
}

// SendOutcome is the result of a single transmission attempt.
// It is consumed by the driver's logging and never returned to callers of Send.
type SendOutcome struct {
	Success bool
	// StatusCode is the HTTP status returned by an HTTP based provider, 0 otherwise.
	StatusCode int
	// Body is the raw provider response, kept for diagnosing failures.
	Body string
	Err  error
}

// Delivered returns a successful outcome.
func Delivered() SendOutcome {
	return SendOutcome{Success: true}
}

// Failed returns an outcome for a transport-level failure.
func Failed(err error) SendOutcome {
	return SendOutcome{Err: err}
}

// Rejected returns an outcome for a provider that answered with a non-success status.
func Rejected(status int, body string) SendOutcome {
	return SendOutcome{
		StatusCode: status,
		Body:       body,
		Err:        fmt.Errorf("provider responded with status %d", status),
	}
}
