package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/matheuskafuri/grid7/internal/ai"
	"github.com/matheuskafuri/grid7/internal/config"
	"github.com/matheuskafuri/grid7/internal/feed"
	"github.com/matheuskafuri/grid7/internal/mail"
	"github.com/matheuskafuri/grid7/internal/news"
	"github.com/matheuskafuri/grid7/internal/refresh"
	"github.com/matheuskafuri/grid7/internal/store"
	"github.com/matheuskafuri/grid7/internal/subscribe"
)

// app is the wired set of components every command shares.
type app struct {
	cfg        *config.Config
	logger     *log.Logger
	store      *store.Store
	refresher  *refresh.Coordinator
	generator  ai.Generator
	dispatcher mail.Dispatcher
}

// newApp wires the feed, refresh and newsletter components. The store
// starts with the built-in seed feed.
func newApp(cfg *config.Config, logger *log.Logger) *app {
	supplier := newSupplier(cfg, logger)
	s := store.New(news.SeedArticles(time.Now()))

	return &app{
		cfg:        cfg,
		logger:     logger,
		store:      s,
		refresher:  refresh.New(s, feed.Live{Supplier: supplier, Topics: cfg.Topics}, logger),
		generator:  newGenerator(cfg, logger),
		dispatcher: mail.NewEmailJS(cfg.Mail, logger),
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newSupplier falls back to the offline supplier when the configured one
// cannot be built, so the built-in feed is still browsable.
func newSupplier(cfg *config.Config, logger *log.Logger) feed.Supplier {
	if flagOffline {
		return feed.Offline{}
	}
	supplier, err := feed.NewSupplier(cfg)
	switch {
	case errors.Is(err, feed.ErrNoAPIKey):
		logger.Warn("live feed disabled", "err", err)
		return feed.Offline{}
	case err != nil:
		logger.Error("live feed disabled", "err", err)
		return feed.Offline{}
	}
	logger.Debug("live feed", "supplier", cfg.Supplier, "topics", len(cfg.Topics))
	return supplier
}

// newGenerator returns nil when AI is not configured; newsletters then use
// the plain fallback body.
func newGenerator(cfg *config.Config, logger *log.Logger) ai.Generator {
	if flagOffline || !cfg.AIEnabled() {
		return nil
	}
	gen, err := ai.New(cfg.AI, cfg.AIKey())
	if err != nil {
		logger.Warn("newsletter generation disabled", "err", err)
		return nil
	}
	return ai.WithRateLimit(gen, cfg.MinRequestInterval())
}

func (a *app) newFlow() *subscribe.Flow {
	return subscribe.New(a.generator, a.dispatcher, a.logger)
}
