// Package cli implements the notifyctl command line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/ilindan-dev/channel-notifier/internal/config"
	"github.com/ilindan-dev/channel-notifier/internal/logger"
	"github.com/ilindan-dev/channel-notifier/internal/notifiers"
	"github.com/ilindan-dev/channel-notifier/internal/service"
	"github.com/spf13/cobra"
)

// ServiceFactory builds the notification service from a config file path.
type ServiceFactory func(configPath string) (*service.NotificationService, error)

// NewService loads configuration (file plus environment) and wires the notification core.
func NewService(configPath string) (*service.NotificationService, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	log, err := logger.NewLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return service.NewNotificationService(notifiers.NewManagerFromConfig(cfg, log), log), nil
}

// NewRootCmd returns the notifyctl root command.
func NewRootCmd(factory ServiceFactory) *cobra.Command {
	root := &cobra.Command{
		Use:           "notifyctl",
		Short:         "Send notifications through the configured channels",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "Path to a YAML config file (environment variables still apply)")

	root.AddCommand(newSendCmd(factory))
	root.AddCommand(newChannelsCmd(factory))
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd(NewService).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serviceFromFlags(cmd *cobra.Command, factory ServiceFactory) (*service.NotificationService, error) {
	path, _ := cmd.Flags().GetString("config")
	return factory(path)
}
