package feed

import (
	"context"
	"errors"
	"fmt"

	"github.com/matheuskafuri/grid7/internal/ai"
	"github.com/matheuskafuri/grid7/internal/config"
	"github.com/matheuskafuri/grid7/internal/news"
	"golang.org/x/sync/errgroup"
)

// ErrNoAPIKey is returned by NewSupplier when the AI supplier is selected
// but no key is configured.
var ErrNoAPIKey = errors.New("no AI API key configured (set ai.api_key or GRID7_AI_KEY)")

// Supplier fetches live articles for one topic. A supplier may return
// articles together with an error when only part of the topic failed.
type Supplier interface {
	FetchTopic(ctx context.Context, topic config.Topic) ([]news.Article, error)
}

// Offline never produces articles.
type Offline struct{}

func (Offline) FetchTopic(context.Context, config.Topic) ([]news.Article, error) {
	return nil, nil
}

// NewSupplier builds the supplier selected in cfg.
func NewSupplier(cfg *config.Config) (Supplier, error) {
	switch cfg.Supplier {
	case "ai", "":
		if !cfg.AIEnabled() {
			return nil, ErrNoAPIKey
		}
		gen, err := ai.New(cfg.AI, cfg.AIKey())
		if err != nil {
			return nil, err
		}
		gen = ai.WithRateLimit(gen, cfg.MinRequestInterval())
		return NewAISupplier(gen, cfg.GetItemsPerQuery()), nil
	case "rss":
		return NewRSSSupplier(cfg, cfg.GetItemsPerQuery()), nil
	case "none":
		return Offline{}, nil
	default:
		return nil, fmt.Errorf("unknown supplier %q", cfg.Supplier)
	}
}

type FetchResult struct {
	Articles []news.Article
	Errors   []error
}

// FetchAll queries every topic concurrently. Articles are concatenated in
// topic order regardless of completion order, and a failing topic does not
// cancel the others.
func FetchAll(ctx context.Context, supplier Supplier, topics []config.Topic) FetchResult {
	type slot struct {
		articles []news.Article
		err      error
	}
	slots := make([]slot, len(topics))

	var g errgroup.Group
	for i, t := range topics {
		g.Go(func() error {
			articles, err := supplier.FetchTopic(ctx, t)
			if err != nil {
				err = fmt.Errorf("%s: %w", t.Name, err)
			}
			slots[i] = slot{articles: articles, err: err}
			return nil
		})
	}
	_ = g.Wait()

	var result FetchResult
	for _, s := range slots {
		result.Articles = append(result.Articles, s.articles...)
		if s.err != nil {
			result.Errors = append(result.Errors, s.err)
		}
	}
	return result
}

// Live pairs a supplier with the topics it is queried for.
type Live struct {
	Supplier Supplier
	Topics   []config.Topic
}

func (l Live) FetchLive(ctx context.Context) FetchResult {
	if l.Supplier == nil {
		return FetchResult{}
	}
	return FetchAll(ctx, l.Supplier, l.Topics)
}
