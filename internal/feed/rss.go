package feed

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"html"
	"strings"
	"sync"
	"time"

	"github.com/matheuskafuri/grid7/internal/classify"
	"github.com/matheuskafuri/grid7/internal/config"
	"github.com/matheuskafuri/grid7/internal/news"
	"github.com/matheuskafuri/grid7/internal/signal"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"
)

const maxAge = 7 * 24 * time.Hour

// RSSSupplier reads the enabled feeds assigned to a topic.
type RSSSupplier struct {
	cfg     *config.Config
	perFeed int
	weights signal.SourceWeights
	policy  *bluemonday.Policy
	now     func() time.Time
}

func NewRSSSupplier(cfg *config.Config, perFeed int) *RSSSupplier {
	policy := bluemonday.StrictPolicy()
	policy.AddSpaceWhenStrippingTag(true)
	return &RSSSupplier{
		cfg:     cfg,
		perFeed: perFeed,
		weights: signal.Weights(cfg.Sources),
		policy:  policy,
		now:     time.Now,
	}
}

func (s *RSSSupplier) FetchTopic(ctx context.Context, topic config.Topic) ([]news.Article, error) {
	sources := s.cfg.SourcesFor(topic.Name)
	if len(sources) == 0 {
		return nil, nil
	}

	var (
		mu       sync.Mutex
		articles = make([][]news.Article, len(sources))
		errs     []error
	)
	var g errgroup.Group
	for i, src := range sources {
		g.Go(func() error {
			got, err := s.fetch(ctx, src)
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				return nil
			}
			articles[i] = got
			return nil
		})
	}
	_ = g.Wait()

	var out []news.Article
	for _, a := range articles {
		out = append(out, a...)
	}
	if len(out) == 0 && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, errors.Join(errs...)
}

func (s *RSSSupplier) fetch(ctx context.Context, source config.Source) ([]news.Article, error) {
	// gofeed parsers are not safe for concurrent use.
	feed, err := gofeed.NewParser().ParseURLWithContext(source.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", source.Name, err)
	}

	now := s.now()
	oldest := now.Add(-maxAge)
	articles := make([]news.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if s.perFeed > 0 && len(articles) >= s.perFeed {
			break
		}
		title := strings.TrimSpace(html.UnescapeString(item.Title))
		if title == "" {
			continue
		}

		pub := now
		if item.PublishedParsed != nil {
			pub = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			pub = *item.UpdatedParsed
		}
		if pub.Before(oldest) {
			continue
		}

		desc := item.Description
		if desc == "" {
			desc = item.Content
		}
		summary := truncate(s.plainText(desc), 300)
		content := s.plainText(item.Content)
		if content == "" {
			content = summary
		}

		articles = append(articles, news.Article{
			ID:        articleID(item.Link, title),
			Title:     title,
			Summary:   summary,
			Content:   truncate(content, 1200),
			Category:  classify.Classify(title, summary),
			Source:    source.Name,
			URL:       item.Link,
			Timestamp: pub,
			ImageURL:  itemImage(item),
			Score: signal.Score(signal.Input{
				Title:     title,
				Summary:   summary,
				Source:    source.Name,
				Published: pub,
			}, s.weights),
		})
	}
	return articles, nil
}

func articleID(link, title string) string {
	key := link
	if key == "" {
		key = title
	}
	h := sha256.Sum256([]byte(key))
	return fmt.Sprintf("rss-%x", h[:8])
}

func itemImage(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			return enc.URL
		}
	}
	return news.RandomImage()
}

// plainText strips markup and entities and collapses whitespace.
func (s *RSSSupplier) plainText(raw string) string {
	if raw == "" {
		return ""
	}
	clean := html.UnescapeString(s.policy.Sanitize(raw))
	return strings.Join(strings.Fields(clean), " ")
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
