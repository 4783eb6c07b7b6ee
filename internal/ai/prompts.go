package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

const newsPrompt = `Find the absolute latest, breaking tech news from the last 24 hours regarding: %s.
Focus on major tech markets including India, US, and China.

Return exactly %d items.

Output strictly a JSON ARRAY of objects. Do not add any markdown formatting, just the raw JSON string.
Structure:
[
  {
    "title": "Headline",
    "summary": "Two sentence summary",
    "content": "Short paragraph details",
    "category": "AI" | "OS" | "Gadgets" | "Other",
    "source": "Source Name",
    "score": 8
  }
]
The score is an integer from 6 to 10.`

const newsletterPrompt = `Write a futuristic, cleanly formatted email body for a subscriber named %s.
It is for the "Grid7 Intelligence Brief".

Include these %d top stories:
%s

Format Requirements:
- Use plain text but valid structure.
- Keep it exciting and tech-focused.
- End with "Stay Plugged In. - The Grid7 Team".
- Do NOT include Subject lines. Just the body.`

// NewsPrompt builds the live-news query for one topic.
func NewsPrompt(topic string, items int) string {
	return fmt.Sprintf(newsPrompt, topic, items)
}

// Item is one story as returned by the news prompt.
type Item struct {
	Title    string  `json:"title"`
	Summary  string  `json:"summary"`
	Content  string  `json:"content"`
	Category string  `json:"category"`
	Source   string  `json:"source"`
	Score    float64 `json:"score"`
}

// ParseItems decodes a JSON array of stories, tolerating a surrounding
// markdown code fence.
func ParseItems(text string) ([]Item, error) {
	clean := stripFence(text)
	if clean == "" {
		return nil, fmt.Errorf("empty response")
	}
	var items []Item
	if err := json.Unmarshal([]byte(clean), &items); err != nil {
		return nil, fmt.Errorf("parsing news items: %w", err)
	}
	return items, nil
}

func stripFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// Newsletter asks g for a subscriber email body built around stories, a
// pre-rendered "- title: summary" list.
func Newsletter(ctx context.Context, g Generator, email string, stories []string) (string, error) {
	prompt := fmt.Sprintf(newsletterPrompt, email, len(stories), strings.Join(stories, "\n"))
	resp, err := g.Generate(ctx, prompt, false)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "Welcome to Grid7.", nil
	}
	return text, nil
}
