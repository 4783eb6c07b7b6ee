package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/matheuskafuri/grid7/internal/browse"
	"github.com/matheuskafuri/grid7/internal/classify"
	"github.com/matheuskafuri/grid7/internal/logging"
	"github.com/matheuskafuri/grid7/internal/news"
	"github.com/matheuskafuri/grid7/internal/refresh"
	"github.com/spf13/cobra"
)

var (
	flagFetchCategory string
	flagFetchLimit    int
	flagFetchJSON     bool
	flagFetchTimeout  time.Duration
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Refresh from live sources once and print the feed",
	Long: `Run a single live refresh, merge it into the built-in feed and print the
result. Failed sub-queries are reported on stderr; whatever succeeded is
still printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := classify.ResolveAlias(flagFetchCategory)
		if err != nil {
			return fmt.Errorf("invalid --category: %w", err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := logging.New(os.Stderr, cfg.LogLevel)
		a := newApp(cfg, logger)

		ctx, cancel := context.WithTimeout(cmd.Context(), flagFetchTimeout)
		defer cancel()
		out, err := a.refresher.Refresh(ctx)
		if err != nil {
			return err
		}
		for _, e := range out.Errors {
			fmt.Fprintf(os.Stderr, "  [warn] %v\n", e)
		}
		fmt.Fprintln(os.Stderr, summarizeOutcome(out))

		limit := flagFetchLimit
		if limit <= 0 {
			limit = cfg.GetPageSize()
		}
		articles, _ := browse.Window(browse.Filter(a.store.Articles(), category), limit)

		if flagFetchJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(articles)
		}
		printArticles(os.Stdout, articles, time.Now())
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVarP(&flagFetchCategory, "category", "c", "all", "only print one category")
	fetchCmd.Flags().IntVarP(&flagFetchLimit, "limit", "n", 0, "number of articles to print (default: page size)")
	fetchCmd.Flags().BoolVar(&flagFetchJSON, "json", false, "print articles as JSON")
	fetchCmd.Flags().DurationVar(&flagFetchTimeout, "timeout", 90*time.Second, "give up on live sources after this long")
}

func summarizeOutcome(out refresh.Outcome) string {
	took := out.Duration.Round(time.Millisecond)
	switch out.Status {
	case refresh.StatusMerged:
		return fmt.Sprintf("Fetched %d article(s), %d new (%s).", out.Fetched, out.Added, took)
	case refresh.StatusPartial:
		return fmt.Sprintf("Fetched %d article(s), %d new; %d sub-quer%s failed (%s).",
			out.Fetched, out.Added, len(out.Errors), plural(len(out.Errors), "y", "ies"), took)
	case refresh.StatusEmpty:
		return "No new articles."
	default:
		return "Live refresh failed; showing the built-in feed."
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func printArticles(w io.Writer, articles []news.Article, now time.Time) {
	if len(articles) == 0 {
		fmt.Fprintln(w, "No articles.")
		return
	}
	for i, a := range articles {
		fmt.Fprintf(w, "%2d. [%s] %s\n", i+1, a.Category, a.Title)
		fmt.Fprintf(w, "    %s · %s\n", a.Source, humanize.RelTime(a.Timestamp, now, "ago", "from now"))
		if s := strings.TrimSpace(a.Summary); s != "" {
			fmt.Fprintf(w, "    %s\n", s)
		}
		fmt.Fprintf(w, "    %s\n", a.Link())
	}
}
