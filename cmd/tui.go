package cmd

import (
	"fmt"

	"github.com/matheuskafuri/grid7/internal/capability"
	"github.com/matheuskafuri/grid7/internal/classify"
	"github.com/matheuskafuri/grid7/internal/config"
	"github.com/matheuskafuri/grid7/internal/logging"
	"github.com/matheuskafuri/grid7/internal/news"
	"github.com/matheuskafuri/grid7/internal/tui"
	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, args []string) error {
	category, err := classify.ResolveAlias(flagCategory)
	if err != nil {
		return fmt.Errorf("invalid --category: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file.
	logger, err := logging.Open(config.LogPath(), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Close()

	a := newApp(cfg, logger.Logger)

	var narrator *capability.Narrator
	if speaker, err := capability.NewCommandSpeaker(); err != nil {
		logger.Info("speech unavailable", "err", err)
		narrator = capability.NewNarrator(nil)
	} else {
		narrator = capability.NewNarrator(speaker)
	}

	return tui.Run(tui.RunOpts{
		Cfg:        cfg,
		Store:      a.store,
		Refresher:  a.refresher,
		Launches:   news.SeedLaunches(),
		Flow:       a.newFlow(),
		Narrator:   narrator,
		Clipboard:  capability.SystemClipboard{},
		Sharer:     capability.TerminalSharer{},
		Opener:     capability.Browser{},
		Logger:     logger.Logger,
		Category:   category,
		SkipSplash: flagNoSplash,
	})
}
