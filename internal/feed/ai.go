package feed

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/matheuskafuri/grid7/internal/ai"
	"github.com/matheuskafuri/grid7/internal/config"
	"github.com/matheuskafuri/grid7/internal/news"
)

const defaultScore = 8

// AISupplier asks a search-grounded model for the latest stories on a topic.
type AISupplier struct {
	gen   ai.Generator
	items int
	now   func() time.Time
	image func() string
}

func NewAISupplier(gen ai.Generator, items int) *AISupplier {
	return &AISupplier{gen: gen, items: items, now: time.Now, image: news.RandomImage}
}

func (s *AISupplier) FetchTopic(ctx context.Context, topic config.Topic) ([]news.Article, error) {
	resp, err := s.gen.Generate(ctx, ai.NewsPrompt(topic.Prompt, s.items), true)
	if err != nil {
		return nil, err
	}
	items, err := ai.ParseItems(resp.Text)
	if err != nil {
		return nil, err
	}

	now := s.now()
	articles := make([]news.Article, 0, len(items))
	for _, it := range items {
		title := strings.TrimSpace(it.Title)
		if title == "" {
			continue
		}
		score := it.Score
		if score <= 0 {
			score = defaultScore
		}
		articles = append(articles, news.Article{
			ID:        "live-" + uuid.NewString(),
			Title:     title,
			Summary:   it.Summary,
			Content:   it.Content,
			Category:  news.ParseCategory(it.Category),
			Source:    it.Source,
			URL:       groundedURL(title, it.Source, resp.Sources),
			Timestamp: now,
			ImageURL:  s.image(),
			Score:     min(score, 10),
		})
	}
	return articles, nil
}

// groundedURL returns the first grounding page whose title overlaps the
// item title, or a web search for the item.
func groundedURL(title, source string, sources []ai.Source) string {
	t := strings.ToLower(title)
	for _, src := range sources {
		st := strings.ToLower(strings.TrimSpace(src.Title))
		if st == "" {
			continue
		}
		if strings.Contains(st, t) || strings.Contains(t, st) {
			return src.URI
		}
	}
	return news.SearchURL(title, source)
}
