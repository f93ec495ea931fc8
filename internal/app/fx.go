package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/ilindan-dev/channel-notifier/internal/config"
	deliveryHTTP "github.com/ilindan-dev/channel-notifier/internal/delivery/http"
	"github.com/ilindan-dev/channel-notifier/internal/logger"
	"github.com/ilindan-dev/channel-notifier/internal/notifiers"
	"github.com/ilindan-dev/channel-notifier/internal/service"
	"go.uber.org/fx"
)

// CommonModule provides the configuration, logging and notification core.
var CommonModule = fx.Options(
	fx.Provide(
		config.NewConfig,
		logger.NewLogger,

		notifiers.NewManagerFromConfig,
		fx.Annotate(
			service.NewNotificationService,
			fx.From(new(*notifiers.Manager)),
		),
	),
)

// APIModule defines the Fx module for the HTTP API application.
var APIModule = fx.Options(
	CommonModule,
	fx.Provide(
		deliveryHTTP.NewHandlers,
		deliveryHTTP.NewServer,
	),

	fx.Invoke(func(server *deliveryHTTP.Server, lc fx.Lifecycle) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				go func() {
					if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						panic(err)
					}
				}()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return server.Shutdown(ctx)
			},
		})
	}),
)
