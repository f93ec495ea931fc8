package cli

import (
	"fmt"
	"strings"

	"github.com/ilindan-dev/channel-notifier/internal/domain/model"
	"github.com/spf13/cobra"
)

func newSendCmd(factory ServiceFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send [flags] <message>",
		Short: "Send a message over a channel",
		Long: `Send a message over the named channel, or the default channel when none is given.

Delivery failures are only logged; the exit code reports configuration errors.

Examples:
  notifyctl send "Backup finished"
  notifyctl send --channel sms "Disk almost full"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			channel, _ := cmd.Flags().GetString("channel")

			svc, err := serviceFromFlags(cmd, factory)
			if err != nil {
				return err
			}

			resolved, err := svc.Send(cmd.Context(), model.Channel(channel), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "notification dispatched via %s\n", resolved)
			return nil
		},
	}
	cmd.Flags().StringP("channel", "c", "", "Channel to send through (default: configured default)")
	return cmd
}

func newChannelsCmd(factory ServiceFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "channels",
		Short: "List the available channels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := serviceFromFlags(cmd, factory)
			if err != nil {
				return err
			}

			def := svc.DefaultChannel()
			for _, ch := range svc.Channels() {
				marker := " "
				if ch == def {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, ch)
			}
			return nil
		},
	}
}
