package briefing

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/matheuskafuri/grid7/internal/news"
)

// NewsletterStories is how many articles a subscriber email leads with.
const NewsletterStories = 3

// Header summarises the current feed for the top of the news screen.
type Header struct {
	Greeting      string
	Count         int
	ActiveSources string
	Trending      string
}

// Card is an article prepared for display.
type Card struct {
	Article     news.Article
	Excerpt     string
	ReadingTime int
}

// NewHeader builds the header for the visible articles against the full
// feed.
func NewHeader(now time.Time, visible, all []news.Article) Header {
	h := Header{
		Greeting: greeting(now),
		Count:    len(all),
	}
	if len(visible) > 0 {
		h.ActiveSources = activeSources(visible)
		h.Trending = trending(visible, all)
	}
	return h
}

// NewCard prepares an article for a feed card.
func NewCard(a news.Article) Card {
	return Card{
		Article:     a,
		Excerpt:     Excerpt(a.Summary),
		ReadingTime: estimateReadTime(a.Content),
	}
}

// TopStories returns the first n articles in feed order.
func TopStories(articles []news.Article, n int) []news.Article {
	if n < 0 {
		n = 0
	}
	if len(articles) > n {
		articles = articles[:n]
	}
	return articles
}

// StoryLines renders articles as "- title: summary" lines.
func StoryLines(articles []news.Article) []string {
	lines := make([]string, len(articles))
	for i, a := range articles {
		lines[i] = fmt.Sprintf("- %s: %s", a.Title, a.Summary)
	}
	return lines
}

// FallbackBody is the newsletter sent when no body could be generated.
func FallbackBody(lines []string) string {
	return "Welcome to Grid7.\n\nTop Stories:\n" + strings.Join(lines, "\n") + "\n\nStay Plugged In."
}

// Excerpt returns the first sentence of a summary.
func Excerpt(desc string) string {
	if desc == "" {
		return ""
	}
	for i, c := range desc {
		if c == '.' && i > 20 {
			return desc[:i+1]
		}
	}
	runes := []rune(desc)
	if len(runes) > 150 {
		return string(runes[:150]) + "..."
	}
	return desc
}

func estimateReadTime(content string) int {
	words := len(strings.Fields(content))
	// Content is a condensed paragraph; the full story runs about 3x longer at 200 WPM.
	minutes := (words * 3) / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func greeting(now time.Time) string {
	hour := now.Hour()
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 17:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func activeSources(articles []news.Article) string {
	counts := map[string]int{}
	for _, a := range articles {
		if a.Source == "" {
			continue
		}
		counts[a.Source]++
	}

	type sc struct {
		name  string
		count int
	}
	var sorted []sc
	for name, count := range counts {
		sorted = append(sorted, sc{name, count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].name < sorted[j].name
	})

	limit := min(3, len(sorted))
	parts := make([]string, limit)
	for i := 0; i < limit; i++ {
		parts[i] = fmt.Sprintf("%s (%d)", sorted[i].name, sorted[i].count)
	}
	return strings.Join(parts, ", ")
}

// trending extracts top keywords from visible titles using TF-IDF over the
// whole feed.
func trending(visible, all []news.Article) string {
	df := map[string]int{}
	for _, a := range all {
		seen := map[string]bool{}
		for _, w := range tokenize(a.Title) {
			if !seen[w] {
				df[w]++
				seen[w] = true
			}
		}
	}

	tf := map[string]int{}
	for _, a := range visible {
		for _, w := range tokenize(a.Title) {
			tf[w]++
		}
	}

	totalDocs := max(len(all), 1)

	type scored struct {
		term  string
		score float64
	}
	var terms []scored
	for term, freq := range tf {
		if freq < 2 {
			continue
		}
		docFreq := max(df[term], 1)
		idf := math.Log(float64(totalDocs) / float64(docFreq))
		terms = append(terms, scored{term, float64(freq) * idf})
	}

	sort.Slice(terms, func(i, j int) bool {
		if terms[i].score != terms[j].score {
			return terms[i].score > terms[j].score
		}
		return terms[i].term < terms[j].term
	})

	limit := min(3, len(terms))
	parts := make([]string, limit)
	for i := 0; i < limit; i++ {
		parts[i] = terms[i].term
	}
	return strings.Join(parts, ", ")
}

var stopWords = map[string]bool{
	"the": true, "and": true, "but": true, "for": true, "with": true, "from": true,
	"this": true, "that": true, "are": true, "was": true, "were": true, "been": true,
	"being": true, "have": true, "has": true, "had": true, "does": true, "will": true,
	"would": true, "could": true, "should": true, "may": true, "might": true, "can": true,
	"not": true, "how": true, "what": true, "when": true, "where": true, "who": true,
	"which": true, "why": true, "each": true, "every": true, "both": true, "more": true,
	"most": true, "other": true, "some": true, "such": true, "than": true, "very": true,
	"just": true, "about": true, "into": true, "over": true, "after": true, "before": true,
	"your": true, "they": true, "them": true, "their": true, "new": true, "gets": true,
	"here": true, "says": true, "now": true,
}

func tokenize(s string) []string {
	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(s)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if len(word) < 4 || stopWords[word] {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}
