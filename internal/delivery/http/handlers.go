package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ilindan-dev/channel-notifier/internal/domain/model"
	"github.com/ilindan-dev/channel-notifier/internal/notifiers"
	"github.com/ilindan-dev/channel-notifier/internal/service"
	"github.com/rs/zerolog"
)

const statusDispatched = "dispatched"

type Handlers struct {
	service *service.NotificationService
	logger  zerolog.Logger
}

// NewHandlers creates a new instance of Handlers.
func NewHandlers(service *service.NotificationService, logger *zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		logger:  logger.With().Str("layer", "http_handler").Logger(),
	}
}

// RegisterRoutes sets up the routing for the notification API.
func (h *Handlers) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.POST("/notifications", h.SendNotification)
		api.GET("/channels", h.ListChannels)
		api.GET("/test/email", h.SendTestEmail)
		api.GET("/test/sms", h.SendTestSMS)
	}
}

// SendNotification sends a message over the requested or default channel.
func (h *Handlers) SendNotification(c *gin.Context) {
	log := requestLogger(c, h.logger)

	var req SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("invalid request body")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resolved, err := h.service.Send(c.Request.Context(), model.Channel(req.Channel), req.Message)
	if err != nil {
		if errors.Is(err, notifiers.ErrUnknownDriver) || errors.Is(err, notifiers.ErrNoDefaultDriver) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to initialize channel"})
		return
	}

	c.JSON(http.StatusAccepted, SendNotificationResponse{Channel: string(resolved), Status: statusDispatched})
}

// ListChannels reports the default channel and every registered one.
func (h *Handlers) ListChannels(c *gin.Context) {
	channels := h.service.Channels()
	names := make([]string, 0, len(channels))
	for _, ch := range channels {
		names = append(names, string(ch))
	}
	c.JSON(http.StatusOK, ChannelsResponse{
		Default:  string(h.service.DefaultChannel()),
		Channels: names,
	})
}

// SendTestEmail triggers the email test message. It always answers 200.
func (h *Handlers) SendTestEmail(c *gin.Context) {
	log := requestLogger(c, h.logger)
	msg := h.service.SendTestEmail(c.Request.Context())
	log.Info().Msg(msg)
	c.JSON(http.StatusOK, ConfirmationResponse{Message: msg})
}

// SendTestSMS triggers the SMS test message. It always answers 200.
func (h *Handlers) SendTestSMS(c *gin.Context) {
	log := requestLogger(c, h.logger)
	msg := h.service.SendTestSMS(c.Request.Context())
	log.Info().Msg(msg)
	c.JSON(http.StatusOK, ConfirmationResponse{Message: msg})
}
