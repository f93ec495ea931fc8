package http

// SendNotificationRequest defines the structure for an ad-hoc notification.
// An empty Channel means the configured default channel.
type SendNotificationRequest struct {
	Channel string `json:"channel"`
	Message string `json:"message" binding:"required"`
}

// SendNotificationResponse is returned once a notification was handed to its driver.
// Delivery failures are not reported here.
type SendNotificationResponse struct {
	Channel string `json:"channel"`
	Status  string `json:"status"`
}

// ConfirmationResponse carries the human-readable confirmation of a test send.
type ConfirmationResponse struct {
	Message string `json:"message"`
}

// ChannelsResponse lists the resolvable channels.
type ChannelsResponse struct {
	Default  string   `json:"default"`
	Channels []string `json:"channels"`
}

// ErrorResponse defines a standard structure for API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}
