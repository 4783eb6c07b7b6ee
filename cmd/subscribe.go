package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/matheuskafuri/grid7/internal/logging"
	"github.com/matheuskafuri/grid7/internal/subscribe"
	"github.com/spf13/cobra"
)

var flagSubscribeRefresh bool

var subscribeCmd = &cobra.Command{
	Use:   "subscribe <email>",
	Short: "Send the newsletter briefing to an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		address := args[0]
		if !subscribe.ValidAddress(address) {
			return fmt.Errorf("%w: %q", subscribe.ErrInvalidAddress, address)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := logging.New(os.Stderr, cfg.LogLevel)
		a := newApp(cfg, logger)

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		if flagSubscribeRefresh {
			out, err := a.refresher.Refresh(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, summarizeOutcome(out))
		}

		flow := a.newFlow()
		flow.OnChange(func(s subscribe.Status) {
			if s.Phase == subscribe.Generating || s.Phase == subscribe.Sending {
				fmt.Fprintln(os.Stderr, s.Message)
			}
		})
		if err := flow.Submit(ctx, address, a.store.Articles()); err != nil {
			fmt.Fprintln(os.Stderr, flow.Status().Message)
			return err
		}
		fmt.Println(flow.Status().Message)
		return nil
	},
}

func init() {
	subscribeCmd.Flags().BoolVar(&flagSubscribeRefresh, "refresh", false, "refresh from live sources before composing")
}
