package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/matheuskafuri/grid7/internal/news"
	"github.com/matheuskafuri/grid7/internal/timeline"
	"github.com/spf13/cobra"
)

var launchesCmd = &cobra.Command{
	Use:   "launches",
	Short: "List upcoming product launches",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		now := time.Now()
		printLaunches(os.Stdout, timeline.Upcoming(news.SeedLaunches(), now), now)
	},
}

func printLaunches(w io.Writer, events []news.LaunchEvent, now time.Time) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No upcoming launches.")
		return
	}
	for _, e := range events {
		fmt.Fprintf(w, "%s  %-14s %s (%s, %s)\n",
			e.Date.Format("2006-01-02"), timeline.Countdown(e, now), e.ProductName, e.Company, e.Type)
		if e.Description != "" {
			fmt.Fprintf(w, "            %s\n", e.Description)
		}
	}
}
